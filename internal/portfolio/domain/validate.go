package domain

import (
	"net/mail"
	"strings"
)

func (p Project) Prepared() (Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return p, invalid("title", "required")
	}
	p.Category = strings.TrimSpace(p.Category)
	p.TechStack = compact(p.TechStack)
	p.Features = compact(p.Features)
	return p, nil
}

func (s Skill) Prepared() (Skill, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return s, invalid("name", "required")
	}
	if !s.Category.Valid() {
		return s, invalid("category", "must be one of Frontend, Backend, Tools, Other")
	}
	if s.Level < 0 || s.Level > 100 {
		return s, invalid("level", "must be between 0 and 100")
	}
	return s, nil
}

func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (e Experience) Prepared() (Experience, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.Organization = strings.TrimSpace(e.Organization)
	if e.Title == "" {
		return e, invalid("title", "required")
	}
	if e.Organization == "" {
		return e, invalid("organization", "required")
	}
	if e.Type != ExperienceWork && e.Type != ExperienceEducation {
		return e, invalid("type", "must be work or education")
	}

	start, err := ParseDate(e.StartDate)
	if err != nil {
		return e, invalid("startDate", "must be YYYY-MM or YYYY-MM-DD")
	}
	if e.Current {
		e.EndDate = ""
	}
	if e.EndDate != "" {
		end, err := ParseDate(e.EndDate)
		if err != nil {
			return e, invalid("endDate", "must be YYYY-MM or YYYY-MM-DD")
		}
		if end.Before(start) {
			return e, invalid("endDate", "is before startDate")
		}
	}
	return e, nil
}

func (m ContactMessage) Prepared() (ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	switch {
	case m.Name == "":
		return m, invalid("name", "required")
	case m.Email == "":
		return m, invalid("email", "required")
	case m.Subject == "":
		return m, invalid("subject", "required")
	case strings.TrimSpace(m.Message) == "":
		return m, invalid("message", "required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return m, invalid("email", "not a valid address")
	}
	return m, nil
}

// Prepared derives the slug from the name when none was supplied.
func (c Category) Prepared() (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return c, invalid("name", "required")
	}
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return c, nil
}

// compact trims entries and drops blanks; nil stays nil.
func compact(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
