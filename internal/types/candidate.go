// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a read-only snapshot of a stored candidate. The matching and
// ranking code receives plain value copies, never live database rows.
type Candidate struct {
	ID                uuid.UUID    `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone,omitempty"`
	Location          string       `json:"location,omitempty"`
	ExperienceSummary string       `json:"experience_summary,omitempty"`
	ResumeFilePath    string       `json:"resume_file_path,omitempty"`
	Skills            []Skill      `json:"skills,omitempty"`
	Education         []Education  `json:"education,omitempty"`
	Experiences       []Experience `json:"experience,omitempty"`
	Projects          []Project    `json:"projects,omitempty"`
	CreatedAt         time.Time    `json:"created_at,omitempty"`
}

// Skill is a single candidate skill. NameNormalized is derived once at
// ingestion and is the comparison key; two differently spelled skills for the
// same technology may both exist in the store.
type Skill struct {
	Name           string `json:"name"`
	NameNormalized string `json:"name_normalized"`
	Category       string `json:"category,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution,omitempty"`
	Year         string `json:"year,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// Experience is a single work-experience entry. Duration and the date fields
// are free text as written on the resume; "present" is an accepted end date.
type Experience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// Project is a single project entry from a resume.
type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies_used,omitempty"`
}
