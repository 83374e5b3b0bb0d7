// Package models contains the persisted domain models for the planner.
package models

import (
	"time"

	"github.com/conference-planner/backend/internal/schedule"
)

// Schedule is the persistence aggregate: one imported conference program,
// its parsed day tree, and the user's talk selections. Dates inside Data
// serialize to RFC 3339 strings and are decoded back into time.Time values
// when the schedule is loaded.
type Schedule struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Source     string         `json:"source,omitempty"`
	Data       []schedule.Day `json:"data"`
	Selections []string       `json:"selections"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ScheduleSummary is a schedule row without the parsed day tree, for
// listings.
type ScheduleSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Source     string    `json:"source,omitempty"`
	Days       int       `json:"days"`
	Selections int       `json:"selections"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}
