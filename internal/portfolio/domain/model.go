package domain

import (
	"slices"
	"time"
)

// Record is implemented by every portfolio entity so collections can be
// handled generically by both the local store and the remote repository.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	// Stamped fills creation timestamps that are still empty.
	Stamped(now time.Time) T
	// Prepared returns the normalized record or a ValidationError.
	Prepared() (T, error)
}

// Patch is a partial update for a record of type T.
type Patch[T any] interface {
	Apply(rec T) T
	// Merge returns rec with the fields named by the patch, and the fields
	// derived from them, taken from prepared.
	Merge(rec, prepared T) T
}

// Project is a portfolio project. Category holds a Category slug.
type Project struct {
	ID              string   `json:"id" firestore:"-" yaml:"id"`
	Title           string   `json:"title" firestore:"title" yaml:"title"`
	Description     string   `json:"description" firestore:"description" yaml:"description"`
	LongDescription string   `json:"longDescription" firestore:"longDescription" yaml:"longDescription"`
	TechStack       []string `json:"techStack" firestore:"techStack" yaml:"techStack"`
	Category        string   `json:"category" firestore:"category" yaml:"category"`
	Image           string   `json:"image" firestore:"image" yaml:"image"`
	GithubURL       string   `json:"githubUrl" firestore:"githubUrl" yaml:"githubUrl"`
	LiveURL         string   `json:"liveUrl,omitempty" firestore:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	Features        []string `json:"features" firestore:"features" yaml:"features"`
	Featured        bool     `json:"featured" firestore:"featured" yaml:"featured"`
	CreatedAt       string   `json:"createdAt" firestore:"createdAt" yaml:"createdAt"`
}

type SkillCategory string

const (
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillTools    SkillCategory = "Tools"
	SkillOther    SkillCategory = "Other"
)

// SkillCategories lists the closed set in display order.
var SkillCategories = []SkillCategory{SkillFrontend, SkillBackend, SkillTools, SkillOther}

type Skill struct {
	ID       string        `json:"id" firestore:"-" yaml:"id"`
	Name     string        `json:"name" firestore:"name" yaml:"name"`
	Category SkillCategory `json:"category" firestore:"category" yaml:"category"`
	Level    int           `json:"level" firestore:"level" yaml:"level"` // 0-100
	Icon     string        `json:"icon,omitempty" firestore:"icon,omitempty" yaml:"icon,omitempty"`
}

type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

type Experience struct {
	ID           string         `json:"id" firestore:"-" yaml:"id"`
	Type         ExperienceType `json:"type" firestore:"type" yaml:"type"`
	Title        string         `json:"title" firestore:"title" yaml:"title"`
	Organization string         `json:"organization" firestore:"organization" yaml:"organization"`
	Location     string         `json:"location" firestore:"location" yaml:"location"`
	StartDate    string         `json:"startDate" firestore:"startDate" yaml:"startDate"` // YYYY-MM or YYYY-MM-DD
	EndDate      string         `json:"endDate,omitempty" firestore:"endDate,omitempty" yaml:"endDate,omitempty"`
	Description  string         `json:"description" firestore:"description" yaml:"description"`
	Current      bool           `json:"current" firestore:"current" yaml:"current"`
}

// ContactMessage is created by the public contact form and only ever
// toggled read or deleted afterwards.
type ContactMessage struct {
	ID        string `json:"id" firestore:"-" yaml:"id"`
	Name      string `json:"name" firestore:"name" yaml:"name"`
	Email     string `json:"email" firestore:"email" yaml:"email"`
	Subject   string `json:"subject" firestore:"subject" yaml:"subject"`
	Message   string `json:"message" firestore:"message" yaml:"message"`
	CreatedAt string `json:"createdAt" firestore:"createdAt" yaml:"createdAt"`
	Read      bool   `json:"read" firestore:"read" yaml:"read"`
}

type Category struct {
	ID   string `json:"id" firestore:"-" yaml:"id"`
	Name string `json:"name" firestore:"name" yaml:"name"`
	Slug string `json:"slug" firestore:"slug" yaml:"slug"`
}

func (p Project) RecordID() string        { return p.ID }
func (s Skill) RecordID() string          { return s.ID }
func (e Experience) RecordID() string     { return e.ID }
func (m ContactMessage) RecordID() string { return m.ID }
func (c Category) RecordID() string       { return c.ID }

func (p Project) WithID(id string) Project               { p.ID = id; return p }
func (s Skill) WithID(id string) Skill                   { s.ID = id; return s }
func (e Experience) WithID(id string) Experience         { e.ID = id; return e }
func (m ContactMessage) WithID(id string) ContactMessage { m.ID = id; return m }
func (c Category) WithID(id string) Category             { c.ID = id; return c }

func (p Project) Stamped(now time.Time) Project {
	if p.CreatedAt == "" {
		p.CreatedAt = now.UTC().Format(TimestampLayout)
	}
	return p
}

func (m ContactMessage) Stamped(now time.Time) ContactMessage {
	if m.CreatedAt == "" {
		m.CreatedAt = now.UTC().Format(TimestampLayout)
	}
	return m
}

// Clone copies the list fields so the result shares no memory with p.
func (p Project) Clone() Project {
	p.TechStack = slices.Clone(p.TechStack)
	p.Features = slices.Clone(p.Features)
	return p
}

func (s Skill) Stamped(time.Time) Skill           { return s }
func (e Experience) Stamped(time.Time) Experience { return e }
func (c Category) Stamped(time.Time) Category     { return c }

// TimestampLayout matches the ISO strings the site has always stored.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Experience dates are stored either as a month or as a full day.
const (
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"
)

// ParseDate parses an Experience start or end date in either layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(DateLayout, s)
}
