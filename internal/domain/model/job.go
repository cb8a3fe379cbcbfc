// Package model defines the core data types for the airang-ssam job listing system.
package model

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the current lifecycle state of a job posting.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type JobStatus string

const (
	// JobStatusOpen indicates a posting is open for tutor discovery.
	JobStatusOpen JobStatus = "open"
	// JobStatusInProgress indicates a tutor has been matched and work started.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates the engagement finished.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled indicates the posting was cancelled.
	JobStatusCancelled JobStatus = "cancelled"
)

// Valid returns true if the JobStatus is one of the four lifecycle states.
func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusInProgress ||
		s == JobStatusCompleted || s == JobStatusCancelled
}

// UnmarshalText implements encoding.TextUnmarshaler for JobStatus.
func (s *JobStatus) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	js := JobStatus(v)
	if js.Valid() {
		*s = js
		return nil
	}
	return fmt.Errorf("invalid JobStatus: %q", v)
}

// jobStatusTransitions is the allowed transition table. open is initial;
// completed and cancelled are terminal.
var jobStatusTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted:  {},
	JobStatusCancelled:  {},
}

// CanTransitionTo returns true if the transition from s to target is allowed.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, next := range jobStatusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Job represents a parent-authored care/tutoring request posting.
// MatchedTutorID is set only when status has left open; both tutor id
// fields hold member identities.
type Job struct {
	ID               string    `json:"id"                          db:"id"`
	RequesterID      string    `json:"requester_id"                db:"requester_id"`
	Title            string    `json:"title"                       db:"title"`
	Description      string    `json:"description"                 db:"description"`
	Requirements     string    `json:"requirements,omitempty"      db:"requirements"`
	WorkPlace        string    `json:"work_place"                  db:"work_place"`
	Status           JobStatus `json:"status"                      db:"status"`
	MatchedTutorID   *string   `json:"matched_tutor_id,omitempty"  db:"matched_tutor_id"`
	PreferredTutorID *string   `json:"preferred_tutor_id,omitempty" db:"preferred_tutor_id"`
	CreatedAt        time.Time `json:"created_at"                  db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"                  db:"updated_at"`
}

// CreateJobRequest represents a parent's request to create a posting.
type CreateJobRequest struct {
	RequesterID      string   `json:"-"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements,omitempty"`
	WorkPlace        string   `json:"work_place"`
	PreferredTutorID *string  `json:"preferred_tutor_id,omitempty"`
	CategoryIDs      []string `json:"category_ids,omitempty"`
}

// Validate checks required fields on a create request.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required and cannot be empty")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required and cannot be empty")
	}
	if strings.TrimSpace(r.WorkPlace) == "" {
		return fmt.Errorf("work_place is required and cannot be empty")
	}
	return nil
}

// CategoryLabel is the flat {id, name} category shape attached to listed jobs.
type CategoryLabel struct {
	ID   string `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// MemberSummary is the trimmed requester view attached to listed jobs:
// id, name and email only, no other personal fields.
type MemberSummary struct {
	ID    string `json:"id"    db:"id"`
	Name  string `json:"name"  db:"name"`
	Email string `json:"email" db:"email"`
}
