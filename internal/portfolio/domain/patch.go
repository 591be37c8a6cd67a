package domain

import "slices"

// Patch types carry only the fields a caller wants to change; nil fields are
// left alone. Applying two patches in sequence keeps the later value per field.

// ApplyPatch validates patch applied to rec. The result differs from rec only
// in the fields the patch names and the fields derived from them; the other
// fields are kept exactly as stored.
func ApplyPatch[T Record[T], P Patch[T]](rec T, patch P) (T, error) {
	prepared, err := patch.Apply(rec).Prepared()
	if err != nil {
		var zero T
		return zero, err
	}
	return patch.Merge(rec, prepared), nil
}

type ProjectPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"longDescription,omitempty"`
	TechStack       *[]string `json:"techStack,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Image           *string   `json:"image,omitempty"`
	GithubURL       *string   `json:"githubUrl,omitempty"`
	LiveURL         *string   `json:"liveUrl,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
}

func (p ProjectPatch) Apply(rec Project) Project {
	set(&rec.Title, p.Title)
	set(&rec.Description, p.Description)
	set(&rec.LongDescription, p.LongDescription)
	setSlice(&rec.TechStack, p.TechStack)
	set(&rec.Category, p.Category)
	set(&rec.Image, p.Image)
	set(&rec.GithubURL, p.GithubURL)
	set(&rec.LiveURL, p.LiveURL)
	setSlice(&rec.Features, p.Features)
	set(&rec.Featured, p.Featured)
	return rec
}

func (p ProjectPatch) Merge(rec, prepared Project) Project {
	take(&rec.Title, prepared.Title, p.Title)
	take(&rec.Description, prepared.Description, p.Description)
	take(&rec.LongDescription, prepared.LongDescription, p.LongDescription)
	take(&rec.TechStack, prepared.TechStack, p.TechStack)
	take(&rec.Category, prepared.Category, p.Category)
	take(&rec.Image, prepared.Image, p.Image)
	take(&rec.GithubURL, prepared.GithubURL, p.GithubURL)
	take(&rec.LiveURL, prepared.LiveURL, p.LiveURL)
	take(&rec.Features, prepared.Features, p.Features)
	take(&rec.Featured, prepared.Featured, p.Featured)
	return rec
}

type SkillPatch struct {
	Name     *string        `json:"name,omitempty"`
	Category *SkillCategory `json:"category,omitempty"`
	Level    *int           `json:"level,omitempty"`
	Icon     *string        `json:"icon,omitempty"`
}

func (p SkillPatch) Apply(rec Skill) Skill {
	set(&rec.Name, p.Name)
	set(&rec.Category, p.Category)
	set(&rec.Level, p.Level)
	set(&rec.Icon, p.Icon)
	return rec
}

func (p SkillPatch) Merge(rec, prepared Skill) Skill {
	take(&rec.Name, prepared.Name, p.Name)
	take(&rec.Category, prepared.Category, p.Category)
	take(&rec.Level, prepared.Level, p.Level)
	take(&rec.Icon, prepared.Icon, p.Icon)
	return rec
}

type ExperiencePatch struct {
	Type         *ExperienceType `json:"type,omitempty"`
	Title        *string         `json:"title,omitempty"`
	Organization *string         `json:"organization,omitempty"`
	Location     *string         `json:"location,omitempty"`
	StartDate    *string         `json:"startDate,omitempty"`
	EndDate      *string         `json:"endDate,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Current      *bool           `json:"current,omitempty"`
}

func (p ExperiencePatch) Apply(rec Experience) Experience {
	set(&rec.Type, p.Type)
	set(&rec.Title, p.Title)
	set(&rec.Organization, p.Organization)
	set(&rec.Location, p.Location)
	set(&rec.StartDate, p.StartDate)
	set(&rec.EndDate, p.EndDate)
	set(&rec.Description, p.Description)
	set(&rec.Current, p.Current)
	return rec
}

// Merge also takes the cleared end date of a current position.
func (p ExperiencePatch) Merge(rec, prepared Experience) Experience {
	take(&rec.Type, prepared.Type, p.Type)
	take(&rec.Title, prepared.Title, p.Title)
	take(&rec.Organization, prepared.Organization, p.Organization)
	take(&rec.Location, prepared.Location, p.Location)
	take(&rec.StartDate, prepared.StartDate, p.StartDate)
	take(&rec.EndDate, prepared.EndDate, p.EndDate)
	take(&rec.Description, prepared.Description, p.Description)
	take(&rec.Current, prepared.Current, p.Current)
	if prepared.Current {
		rec.EndDate = ""
	}
	return rec
}

// MessagePatch only toggles the read flag.
type MessagePatch struct {
	Read *bool `json:"read,omitempty"`
}

func (p MessagePatch) Apply(rec ContactMessage) ContactMessage {
	set(&rec.Read, p.Read)
	return rec
}

func (p MessagePatch) Merge(rec, prepared ContactMessage) ContactMessage {
	take(&rec.Read, prepared.Read, p.Read)
	return rec
}

// CategoryPatch with Slug set to "" re-derives the slug from the name.
type CategoryPatch struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

func (p CategoryPatch) Apply(rec Category) Category {
	set(&rec.Name, p.Name)
	set(&rec.Slug, p.Slug)
	return rec
}

// Merge takes a derived slug when the stored record had none.
func (p CategoryPatch) Merge(rec, prepared Category) Category {
	take(&rec.Name, prepared.Name, p.Name)
	if p.Slug != nil || rec.Slug == "" {
		rec.Slug = prepared.Slug
	}
	return rec
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// take copies src into dst when the patch named the field.
func take[T, V any](dst *T, src T, named *V) {
	if named != nil {
		*dst = src
	}
}

func setSlice(dst *[]string, v *[]string) {
	if v != nil {
		*dst = slices.Clone(*v)
	}
}
