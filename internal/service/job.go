package service

import (
	"context"
	"log/slog"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs       core.JobRepository
	Regions    core.RegionDirectory
	Categories core.CategoryRepository
	Members    core.MemberRepository
	Logger     *slog.Logger
}

// JobService covers the posting lifecycle outside of listing: creation,
// single-posting reads (under the same role visibility rules as listing)
// and status transitions.
type JobService struct {
	jobs       core.JobRepository
	regions    core.RegionDirectory
	categories core.CategoryRepository
	members    core.MemberRepository
	logger     *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobs:       opts.Jobs,
		regions:    opts.Regions,
		categories: opts.Categories,
		members:    opts.Members,
		logger:     logger,
	}
}

// Create creates a new open posting authored by the requesting parent.
func (s *JobService) Create(
	ctx context.Context,
	requester auth.Requester,
	req *model.CreateJobRequest,
) (*model.Job, error) {
	if !requester.Role.Valid() {
		return nil, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
	}
	if requester.Role != auth.RoleParent {
		return nil, apperrors.Forbidden("only parents can create postings")
	}
	req.RequesterID = requester.ID
	return s.jobs.Create(ctx, req)
}

// GetByID returns a single decorated posting if the requester may view it.
// Postings outside the requester's visibility are reported as not found so
// their existence is not leaked.
func (s *JobService) GetByID(
	ctx context.Context,
	requester auth.Requester,
	id string,
) (*model.JobView, error) {
	if !requester.Role.Valid() {
		return nil, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visible, err := s.canView(ctx, requester, job)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}

	return s.decorate(ctx, job)
}

// Cancel cancels a posting on behalf of its owning parent. Admins may cancel
// any posting.
func (s *JobService) Cancel(
	ctx context.Context,
	requester auth.Requester,
	id string,
) (*model.Job, error) {
	if !requester.Role.Valid() {
		return nil, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requester.Role == auth.RoleParent && job.RequesterID != requester.ID {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}
	if requester.Role == auth.RoleTutor {
		return nil, apperrors.Forbidden("tutors cannot cancel postings")
	}

	return s.transition(ctx, job, model.JobStatusCancelled)
}

// Transition applies a lifecycle transition driven by the matching workflow
// (an external collaborator acting with admin credentials).
func (s *JobService) Transition(
	ctx context.Context,
	requester auth.Requester,
	id string,
	target model.JobStatus,
) (*model.Job, error) {
	if !requester.Role.Valid() {
		return nil, apperrors.InvalidRolef("unrecognized requester role %q", requester.Role)
	}
	if requester.Role != auth.RoleAdmin {
		return nil, apperrors.Forbidden("only the matching workflow may drive transitions")
	}
	if !target.Valid() {
		return nil, apperrors.Validationf("invalid status %q", target)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, job, target)
}

func (s *JobService) transition(
	ctx context.Context,
	job *model.Job,
	target model.JobStatus,
) (*model.Job, error) {
	if !job.Status.CanTransitionTo(target) {
		return nil, apperrors.Conflict(
			"cannot transition job from " + string(job.Status) + " to " + string(target))
	}
	updated, err := s.jobs.UpdateStatus(ctx, job.ID, target)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "job status changed",
		"job_id", job.ID, "from", job.Status, "to", target)
	return updated, nil
}

// canView applies the listing visibility rules to a single posting.
func (s *JobService) canView(
	ctx context.Context,
	requester auth.Requester,
	job *model.Job,
) (bool, error) {
	switch requester.Role {
	case auth.RoleParent:
		return job.RequesterID == requester.ID, nil
	case auth.RoleAdmin:
		return true, nil
	case auth.RoleTutor:
		regions, err := s.regions.RegionsForMember(ctx, requester.ID)
		if err != nil {
			return false, err
		}
		inRegion := false
		for _, region := range regions {
			if region == job.WorkPlace {
				inRegion = true
				break
			}
		}
		if !inRegion {
			return false, nil
		}
		if job.Status == model.JobStatusOpen {
			return true, nil
		}
		if job.MatchedTutorID != nil && *job.MatchedTutorID == requester.ID {
			return true, nil
		}
		if job.PreferredTutorID != nil && *job.PreferredTutorID == requester.ID {
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

// decorate attaches category labels and the requester summary to one posting.
func (s *JobService) decorate(ctx context.Context, job *model.Job) (*model.JobView, error) {
	labels, err := s.categories.LabelsForJobs(ctx, []string{job.ID})
	if err != nil {
		return nil, err
	}
	summaries, err := s.members.SummariesByIDs(ctx, []string{job.RequesterID})
	if err != nil {
		return nil, err
	}

	view := &model.JobView{Job: *job, Categories: labels[job.ID]}
	if view.Categories == nil {
		view.Categories = []model.CategoryLabel{}
	}
	if summary, ok := summaries[job.RequesterID]; ok {
		summaryCopy := summary
		view.Requester = &summaryCopy
	}
	return view, nil
}
