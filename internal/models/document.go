// Package models defines the domain types for Dagaz.
package models

import (
	"html/template"
	"time"
)

// SourceFile describes one enumerated input file before conversion.
type SourceFile struct {
	Name      string    `json:"name"` // file name including suffix
	Slug      string    `json:"slug"` // file name without suffix
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is one converted source file. It is built once during a run and
// never mutated afterwards.
type Document struct {
	Slug       string              `json:"slug"`
	Title      string              `json:"title,omitempty"`
	Date       *time.Time          `json:"date,omitempty"`
	Body       template.HTML       `json:"-"`
	Meta       map[string][]string `json:"meta,omitempty"`
	SourcePath string              `json:"source_path"`
	Checksum   string              `json:"checksum"`
}

// OutputName returns the output file name for the document.
func (d Document) OutputName(suffix string) string {
	return d.Slug + suffix
}

// BuildResult summarises one pipeline run.
type BuildResult struct {
	Documents []Document    `json:"documents"`
	Assets    []string      `json:"assets"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}
