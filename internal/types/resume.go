// Package types provides type definitions for structured data used throughout the ats-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResumeDocument represents the structured resume handed to the pipeline by
// the caller. The pipeline treats it as read-only input. All sections are
// optional at the parsing boundary; missing sections are reported by the
// section completeness check rather than rejected.
type ResumeDocument struct {
	Summary    string            `json:"summary,omitempty"`
	Skills     []Skill           `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// Skill is a single skill entry. Callers send skills either as plain strings
// or as {"name": "..."} records, so it unmarshals from both shapes.
type Skill struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both "Go" and {"name": "Go"}.
func (s *Skill) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Name = plain
		return nil
	}

	var record struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("skill must be a string or an object with a name field: %w", err)
	}
	s.Name = record.Name
	return nil
}

// MarshalJSON always emits the record form for round-trip stability.
func (s Skill) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
	}{Name: s.Name})
}

// ExperienceEntry represents a single job entry with its bullet points.
type ExperienceEntry struct {
	Company string   `json:"company,omitempty"`
	Title   string   `json:"title,omitempty"`
	Dates   string   `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// PlainText serializes the resume into a single text blob. This is the input
// to resume keyword extraction and the resume body embedded in the
// suggestion prompt.
func (r *ResumeDocument) PlainText() string {
	if r == nil {
		return ""
	}

	var sb strings.Builder

	if strings.TrimSpace(r.Summary) != "" {
		sb.WriteString(r.Summary)
		sb.WriteString("\n")
	}

	for _, skill := range r.Skills {
		if skill.Name != "" {
			sb.WriteString(skill.Name)
			sb.WriteString(" ")
		}
	}
	if len(r.Skills) > 0 {
		sb.WriteString("\n")
	}

	for _, entry := range r.Experience {
		if entry.Title != "" {
			sb.WriteString(entry.Title)
			sb.WriteString(" ")
		}
		if entry.Company != "" {
			sb.WriteString(entry.Company)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		for _, bullet := range entry.Bullets {
			sb.WriteString(bullet)
			sb.WriteString("\n")
		}
	}

	for _, entry := range r.Education {
		if entry.Degree != "" {
			sb.WriteString(entry.Degree)
			sb.WriteString(" ")
		}
		if entry.Institution != "" {
			sb.WriteString(entry.Institution)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}
