// Package core defines the repository interfaces (ports in hexagonal
// architecture) between the service layer and the data layer. Service
// implementations depend on these interfaces, not concrete repositories.
package core

import (
	"context"

	"github.com/byeyali/airang-ssam-sub001/internal/data/database"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
)

// JobListParams carries one assembled predicate plus sort and pagination to
// the query executor. Conditions are built once per request and passed whole;
// the executor runs the page query and the total count under the same set.
type JobListParams struct {
	Conditions []database.Condition
	SortBy     string // whitelisted column name
	SortOrder  string // "ASC" or "DESC"
	Limit      int
	Offset     int
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	// ListWithConditions returns one page of jobs plus the total count of all
	// jobs matching the same conditions, independent of the pagination window.
	ListWithConditions(ctx context.Context, params JobListParams) ([]*model.Job, int, error)
	// UpdateStatus persists a status transition. It does not validate the
	// transition; callers check model.JobStatus.CanTransitionTo first.
	UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.Job, error)
}

// RegionDirectory resolves which named regions a tutor is registered to serve.
type RegionDirectory interface {
	// RegionsForMember translates a member identity to a tutor profile and
	// returns that tutor's registered region names. A missing tutor profile
	// or zero registrations yields an empty slice and nil error; only a
	// store failure is an error.
	RegionsForMember(ctx context.Context, memberID string) ([]string, error)
}

// CategoryRepository defines the interface for category label lookups.
type CategoryRepository interface {
	// LabelsForJobs returns category labels keyed by job id for the given
	// jobs, in one round trip.
	LabelsForJobs(ctx context.Context, jobIDs []string) (map[string][]model.CategoryLabel, error)
}

// MemberRepository defines the interface for member summary lookups.
type MemberRepository interface {
	// SummariesByIDs returns trimmed member summaries keyed by member id.
	SummariesByIDs(ctx context.Context, memberIDs []string) (map[string]model.MemberSummary, error)
}

// SessionStore persists and retrieves member sessions. Session issuance is
// owned by the authentication layer; this application only reads.
type SessionStore interface {
	Get(ctx context.Context, id string) (auth.Session, error)
}
