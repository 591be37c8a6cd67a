package codec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// Seed bundles all five collections. It is the format of seed files, CLI
// exports and scheduled backups. JSON is valid YAML, so both are accepted.
type Seed struct {
	Projects    []domain.Project        `yaml:"projects"`
	Skills      []domain.Skill          `yaml:"skills"`
	Experiences []domain.Experience     `yaml:"experiences"`
	Messages    []domain.ContactMessage `yaml:"messages"`
	Categories  []domain.Category       `yaml:"categories"`
}

// DefaultSeed returns the built-in content.
func DefaultSeed() Seed {
	return Seed{
		Projects:    domain.DefaultProjects(),
		Skills:      domain.DefaultSkills(),
		Experiences: domain.DefaultExperiences(),
		Messages:    domain.DefaultMessages(),
		Categories:  domain.DefaultCategories(),
	}
}

// ReadSeed decodes a seed bundle. Collections missing from the document
// fall back to the built-in defaults.
func ReadSeed(r io.Reader) (Seed, error) {
	var s Seed
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return Seed{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	def := DefaultSeed()
	if s.Projects == nil {
		s.Projects = def.Projects
	}
	if s.Skills == nil {
		s.Skills = def.Skills
	}
	if s.Experiences == nil {
		s.Experiences = def.Experiences
	}
	if s.Messages == nil {
		s.Messages = def.Messages
	}
	if s.Categories == nil {
		s.Categories = def.Categories
	}
	return s, nil
}

func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return ReadSeed(f)
}

func WriteSeed(w io.Writer, s Seed) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}
	return enc.Close()
}
