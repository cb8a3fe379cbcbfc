package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_Valid(t *testing.T) {
	for _, s := range []JobStatus{JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	for _, s := range []JobStatus{"", "OPEN", "paused", "done"} {
		assert.False(t, s.Valid(), "status %q", s)
	}
}

func TestJobStatus_UnmarshalText(t *testing.T) {
	var s JobStatus
	require.NoError(t, s.UnmarshalText([]byte("  In_Progress ")))
	assert.Equal(t, JobStatusInProgress, s)

	err := s.UnmarshalText([]byte("paused"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JobStatus")
}

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobStatusOpen, JobStatusInProgress, true},
		{JobStatusOpen, JobStatusCancelled, true},
		{JobStatusOpen, JobStatusCompleted, false},
		{JobStatusInProgress, JobStatusCompleted, true},
		{JobStatusInProgress, JobStatusCancelled, true},
		{JobStatusInProgress, JobStatusOpen, false},
		{JobStatusCompleted, JobStatusCancelled, false},
		{JobStatusCompleted, JobStatusInProgress, false},
		{JobStatusCancelled, JobStatusOpen, false},
		{JobStatusCancelled, JobStatusCompleted, false},
		{JobStatusOpen, JobStatusOpen, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCreateJobRequest_Validate(t *testing.T) {
	valid := CreateJobRequest{
		Title:       "Math tutoring",
		Description: "Twice a week",
		WorkPlace:   "Gangnam-gu",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateJobRequest)
	}{
		{"missing title", func(r *CreateJobRequest) { r.Title = "  " }},
		{"missing description", func(r *CreateJobRequest) { r.Description = "" }},
		{"missing work place", func(r *CreateJobRequest) { r.WorkPlace = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}
