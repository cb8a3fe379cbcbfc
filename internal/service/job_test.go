package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
	"github.com/byeyali/airang-ssam-sub001/internal/mocks"
)

func newJobService(t *testing.T) (*JobService, listingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := listingMocks{
		jobs:       mocks.NewMockJobRepository(ctrl),
		regions:    mocks.NewMockRegionDirectory(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		members:    mocks.NewMockMemberRepository(ctrl),
	}
	svc := NewJobService(JobServiceOptions{
		Jobs:       m.jobs,
		Regions:    m.regions,
		Categories: m.categories,
		Members:    m.members,
	})
	return svc, m
}

func TestJobService_Create_ParentOnly(t *testing.T) {
	svc, m := newJobService(t)
	req := &model.CreateJobRequest{
		Title:       "Math tutoring",
		Description: "Twice a week",
		WorkPlace:   "Gangnam-gu",
	}

	m.jobs.EXPECT().Create(gomock.Any(), req).
		DoAndReturn(func(_ context.Context, got *model.CreateJobRequest) (*model.Job, error) {
			assert.Equal(t, "parent-1", got.RequesterID)
			return sampleJob("j1", "parent-1"), nil
		})

	job, err := svc.Create(context.Background(),
		auth.Requester{ID: "parent-1", Role: auth.RoleParent}, req)
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)
}

func TestJobService_Create_ForbiddenForOtherRoles(t *testing.T) {
	svc, _ := newJobService(t)
	req := &model.CreateJobRequest{Title: "x", Description: "y", WorkPlace: "z"}

	for _, role := range []auth.Role{auth.RoleTutor, auth.RoleAdmin} {
		_, err := svc.Create(context.Background(), auth.Requester{ID: "m1", Role: role}, req)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbidden(err), "role %s", role)
	}
}

func TestJobService_GetByID_ParentOwnership(t *testing.T) {
	svc, m := newJobService(t)
	job := sampleJob("j1", "parent-1")

	m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil).Times(2)
	m.categories.EXPECT().LabelsForJobs(gomock.Any(), []string{"j1"}).
		Return(map[string][]model.CategoryLabel{}, nil)
	m.members.EXPECT().SummariesByIDs(gomock.Any(), []string{"parent-1"}).
		Return(map[string]model.MemberSummary{
			"parent-1": {ID: "parent-1", Name: "Park Minji", Email: "p1@example.com"},
		}, nil)

	view, err := svc.GetByID(context.Background(),
		auth.Requester{ID: "parent-1", Role: auth.RoleParent}, "j1")
	require.NoError(t, err)
	assert.Equal(t, "j1", view.ID)
	require.NotNil(t, view.Requester)

	// Another parent gets not-found, never forbidden: existence is not leaked.
	_, err = svc.GetByID(context.Background(),
		auth.Requester{ID: "parent-2", Role: auth.RoleParent}, "j1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_GetByID_TutorVisibility(t *testing.T) {
	matched := "tutor-1"

	tests := []struct {
		name    string
		job     *model.Job
		regions []string
		visible bool
	}{
		{
			name:    "open posting in region",
			job:     sampleJob("j1", "parent-1"),
			regions: []string{"Gangnam-gu"},
			visible: true,
		},
		{
			name:    "open posting outside region",
			job:     sampleJob("j1", "parent-1"),
			regions: []string{"Mapo-gu"},
			visible: false,
		},
		{
			name: "matched posting in region",
			job: func() *model.Job {
				j := sampleJob("j1", "parent-1")
				j.Status = model.JobStatusInProgress
				j.MatchedTutorID = &matched
				return j
			}(),
			regions: []string{"Gangnam-gu"},
			visible: true,
		},
		{
			name: "matched posting outside region stays hidden",
			job: func() *model.Job {
				j := sampleJob("j1", "parent-1")
				j.Status = model.JobStatusInProgress
				j.MatchedTutorID = &matched
				return j
			}(),
			regions: []string{"Mapo-gu"},
			visible: false,
		},
		{
			name: "in-progress posting matched to someone else",
			job: func() *model.Job {
				j := sampleJob("j1", "parent-1")
				other := "tutor-9"
				j.Status = model.JobStatusInProgress
				j.MatchedTutorID = &other
				return j
			}(),
			regions: []string{"Gangnam-gu"},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newJobService(t)
			m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(tt.job, nil)
			m.regions.EXPECT().RegionsForMember(gomock.Any(), "tutor-1").Return(tt.regions, nil)
			if tt.visible {
				m.categories.EXPECT().LabelsForJobs(gomock.Any(), gomock.Any()).
					Return(map[string][]model.CategoryLabel{}, nil)
				m.members.EXPECT().SummariesByIDs(gomock.Any(), gomock.Any()).
					Return(map[string]model.MemberSummary{}, nil)
			}

			view, err := svc.GetByID(context.Background(),
				auth.Requester{ID: "tutor-1", Role: auth.RoleTutor}, "j1")
			if tt.visible {
				require.NoError(t, err)
				assert.Equal(t, "j1", view.ID)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsNotFound(err))
		})
	}
}

func TestJobService_Cancel(t *testing.T) {
	t.Run("owner cancels open posting", func(t *testing.T) {
		svc, m := newJobService(t)
		job := sampleJob("j1", "parent-1")
		cancelled := sampleJob("j1", "parent-1")
		cancelled.Status = model.JobStatusCancelled

		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)
		m.jobs.EXPECT().UpdateStatus(gomock.Any(), "j1", model.JobStatusCancelled).
			Return(cancelled, nil)

		got, err := svc.Cancel(context.Background(),
			auth.Requester{ID: "parent-1", Role: auth.RoleParent}, "j1")
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusCancelled, got.Status)
	})

	t.Run("non-owner parent gets not found", func(t *testing.T) {
		svc, m := newJobService(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(sampleJob("j1", "parent-1"), nil)

		_, err := svc.Cancel(context.Background(),
			auth.Requester{ID: "parent-2", Role: auth.RoleParent}, "j1")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("tutor is forbidden", func(t *testing.T) {
		svc, m := newJobService(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(sampleJob("j1", "parent-1"), nil)

		_, err := svc.Cancel(context.Background(),
			auth.Requester{ID: "tutor-1", Role: auth.RoleTutor}, "j1")
		require.Error(t, err)
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("completed posting cannot be cancelled", func(t *testing.T) {
		svc, m := newJobService(t)
		job := sampleJob("j1", "parent-1")
		job.Status = model.JobStatusCompleted
		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)

		_, err := svc.Cancel(context.Background(),
			auth.Requester{ID: "parent-1", Role: auth.RoleParent}, "j1")
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestJobService_Transition(t *testing.T) {
	t.Run("admin drives open to in_progress", func(t *testing.T) {
		svc, m := newJobService(t)
		job := sampleJob("j1", "parent-1")
		updated := sampleJob("j1", "parent-1")
		updated.Status = model.JobStatusInProgress

		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)
		m.jobs.EXPECT().UpdateStatus(gomock.Any(), "j1", model.JobStatusInProgress).
			Return(updated, nil)

		got, err := svc.Transition(context.Background(),
			auth.Requester{ID: "admin-1", Role: auth.RoleAdmin}, "j1", model.JobStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusInProgress, got.Status)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		svc, _ := newJobService(t)
		_, err := svc.Transition(context.Background(),
			auth.Requester{ID: "parent-1", Role: auth.RoleParent}, "j1", model.JobStatusInProgress)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("invalid target status", func(t *testing.T) {
		svc, _ := newJobService(t)
		_, err := svc.Transition(context.Background(),
			auth.Requester{ID: "admin-1", Role: auth.RoleAdmin}, "j1", model.JobStatus("paused"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("illegal transition conflicts", func(t *testing.T) {
		svc, m := newJobService(t)
		job := sampleJob("j1", "parent-1")
		m.jobs.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)

		_, err := svc.Transition(context.Background(),
			auth.Requester{ID: "admin-1", Role: auth.RoleAdmin}, "j1", model.JobStatusCompleted)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}
