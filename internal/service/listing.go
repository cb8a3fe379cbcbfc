package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data/database"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

// ZeroRegionsMessage explains the tutor-zero-regions short-circuit. This is a
// successful empty result, not an error: the posting query is provably empty
// and is never executed.
const ZeroRegionsMessage = "You have no registered service regions. " +
	"Register at least one region to see open postings."

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Jobs       core.JobRepository
	Regions    core.RegionDirectory
	Categories core.CategoryRepository
	Members    core.MemberRepository
	Logger     *slog.Logger
}

// ListingService is the role-scoped job listing query engine. It is stateless
// per request: eligibility and filter predicates are built fresh into one
// immutable condition set, handed whole to the executor.
type ListingService struct {
	jobs       core.JobRepository
	regions    core.RegionDirectory
	categories core.CategoryRepository
	members    core.MemberRepository
	logger     *slog.Logger
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) *ListingService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingService{
		jobs:       opts.Jobs,
		regions:    opts.Regions,
		categories: opts.Categories,
		members:    opts.Members,
		logger:     logger,
	}
}

// ListJobs returns the page of postings the requester is authorized to view,
// after applying the optional query filters, sort and pagination.
func (s *ListingService) ListJobs(
	ctx context.Context,
	requester auth.Requester,
	query model.JobListQuery,
) (*model.JobListResult, error) {
	if !requester.Role.Valid() {
		return nil, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
	}
	if requester.Role != auth.RoleAdmin && requester.ID == "" {
		return nil, apperrors.Validation("requester id is required")
	}

	q := query.Normalize()
	if q.Status != nil && !q.Status.Valid() {
		return nil, apperrors.Validationf("invalid status filter %q", *q.Status)
	}

	filters := echoFilters(requester.Role, q)

	conds, shortCircuit, err := s.eligibilityConditions(ctx, requester)
	if err != nil {
		return nil, err
	}
	if shortCircuit {
		s.logger.InfoContext(ctx, "tutor has no registered regions, skipping posting query",
			"member_id", requester.ID)
		return &model.JobListResult{
			Data:       []*model.JobView{},
			Pagination: model.NewPagination(q.Page, q.PageSize, 0),
			Filters:    filters,
			Message:    ZeroRegionsMessage,
		}, nil
	}

	// User-chosen filters are ANDed onto the eligibility predicate. For
	// tutors this intersects with the eligibility status disjunction, so a
	// status filter can narrow but never widen what eligibility grants.
	conds = append(conds, filterConditions(q)...)

	jobs, total, err := s.jobs.ListWithConditions(ctx, core.JobListParams{
		Conditions: conds,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Limit:      q.PageSize,
		Offset:     q.Offset(),
	})
	if err != nil {
		return nil, err
	}

	views, err := s.assemble(ctx, jobs)
	if err != nil {
		return nil, err
	}

	return &model.JobListResult{
		Data:       views,
		Pagination: model.NewPagination(q.Page, q.PageSize, total),
		Filters:    filters,
	}, nil
}

// eligibilityConditions produces the base inclusion predicate for the
// requester's role. The boolean result requests the tutor-zero-regions
// short-circuit: no posting query is executed in that case.
//
// The tutor region constraint applies across the entire combined predicate:
// a tutor does not see even their own matched or preferred postings outside
// their registered regions.
func (s *ListingService) eligibilityConditions(
	ctx context.Context,
	requester auth.Requester,
) ([]database.Condition, bool, error) {
	switch requester.Role {
	case auth.RoleParent:
		// A parent sees only postings they authored, regardless of status.
		return []database.Condition{
			database.WhereCond("requester_id", database.Equal, requester.ID),
		}, false, nil

	case auth.RoleTutor:
		regions, err := s.regions.RegionsForMember(ctx, requester.ID)
		if err != nil {
			return nil, false, err
		}
		if len(regions) == 0 {
			return nil, true, nil
		}
		return []database.Condition{
			database.OrCond(
				database.WhereCond("status", database.Equal, model.JobStatusOpen),
				database.WhereCond("matched_tutor_id", database.Equal, requester.ID),
				database.WhereCond("preferred_tutor_id", database.Equal, requester.ID),
			),
			database.WhereCond("work_place", database.Any, regions),
		}, false, nil

	case auth.RoleAdmin:
		// Admins see all postings, all statuses.
		return nil, false, nil
	}
	return nil, false, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
}

// filterConditions translates the optional query fields into predicates.
// Absent fields are no-ops and never generate a restrictive predicate.
func filterConditions(q model.JobListQuery) []database.Condition {
	var conds []database.Condition
	if q.Status != nil {
		conds = append(conds, database.WhereCond("status", database.Equal, *q.Status))
	}
	if q.StartDate != nil {
		conds = append(conds,
			database.WhereCond("created_at", database.GreaterThanOrEqual, *q.StartDate))
	}
	if q.EndDate != nil {
		conds = append(conds,
			database.WhereCond("created_at", database.LessThanOrEqual, *q.EndDate))
	}
	if q.CategoryID != nil {
		// EXISTS keeps the base posting set's cardinality: one row per
		// posting no matter how many of its tags match.
		conds = append(conds, database.WhereRawCond(
			`EXISTS (SELECT 1 FROM job_categories jc WHERE jc.job_id = jobs.id AND jc.category_id = $1)`,
			*q.CategoryID))
	}
	if q.Search != nil {
		pattern := "%" + database.EscapeLike(*q.Search) + "%"
		conds = append(conds, database.WhereRawCond(
			`(title ILIKE $1 OR description ILIKE $2)`, pattern, pattern))
	}
	return conds
}

// assemble decorates the page of postings with category labels and trimmed
// requester summaries. Both lookups are batched and run concurrently; if
// either fails the whole request fails rather than returning partially
// enriched data.
func (s *ListingService) assemble(ctx context.Context, jobs []*model.Job) ([]*model.JobView, error) {
	views := make([]*model.JobView, 0, len(jobs))
	if len(jobs) == 0 {
		return views, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	memberIDSet := make(map[string]struct{}, len(jobs))
	memberIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
		if _, seen := memberIDSet[job.RequesterID]; !seen {
			memberIDSet[job.RequesterID] = struct{}{}
			memberIDs = append(memberIDs, job.RequesterID)
		}
	}

	var labels map[string][]model.CategoryLabel
	var summaries map[string]model.MemberSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		labels, err = s.categories.LabelsForJobs(gctx, jobIDs)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.members.SummariesByIDs(gctx, memberIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, job := range jobs {
		view := &model.JobView{
			Job:        *job,
			Categories: labels[job.ID],
		}
		if view.Categories == nil {
			view.Categories = []model.CategoryLabel{}
		}
		if summary, ok := summaries[job.RequesterID]; ok {
			summaryCopy := summary
			view.Requester = &summaryCopy
		}
		views = append(views, view)
	}
	return views, nil
}

// echoFilters reports the effective filters for the response envelope,
// including the role-driven visibility scope.
func echoFilters(role auth.Role, q model.JobListQuery) model.EchoedFilters {
	filters := model.EchoedFilters{
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	switch role {
	case auth.RoleParent:
		filters.Scope = "own"
	case auth.RoleTutor:
		filters.Scope = "region"
	case auth.RoleAdmin:
		filters.Scope = "all"
	}
	if q.Status != nil {
		status := string(*q.Status)
		filters.Status = &status
	}
	if q.StartDate != nil {
		startDate := q.StartDate.Format(time.RFC3339)
		filters.StartDate = &startDate
	}
	if q.EndDate != nil {
		endDate := q.EndDate.Format(time.RFC3339)
		filters.EndDate = &endDate
	}
	filters.CategoryID = q.CategoryID
	filters.Search = q.Search
	return filters
}
