package data

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data/database"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
	"github.com/byeyali/airang-ssam-sub001/internal/testutil"
)

func seedMember(t *testing.T, db *sql.DB, role string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO members (id, name, email, role) VALUES ($1, $2, $3, $4)
	`, id, "Member "+id[:8], id[:8]+"@example.com", role)
	require.NoError(t, err)
	return id
}

func seedCategory(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO categories (id, name) VALUES ($1, $2)`, id, name)
	require.NoError(t, err)
	return id
}

func seedTutorProfile(t *testing.T, db *sql.DB, memberID string, regions ...string) string {
	t.Helper()
	ctx := context.Background()
	tutorID := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO tutors (id, member_id) VALUES ($1, $2)`, tutorID, memberID)
	require.NoError(t, err)
	for _, region := range regions {
		_, err = db.ExecContext(ctx,
			`INSERT INTO tutor_regions (tutor_id, region_name) VALUES ($1, $2)`, tutorID, region)
		require.NoError(t, err)
	}
	return tutorID
}

func TestJobRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db, slog.Default())
		parentID := seedMember(t, db, "parent")
		mathID := seedCategory(t, db, "math")

		created, err := repo.Create(ctx, &model.CreateJobRequest{
			RequesterID: parentID,
			Title:       "Math tutoring",
			Description: "Twice a week after school",
			WorkPlace:   "Gangnam-gu",
			CategoryIDs: []string{mathID},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, parentID, created.RequesterID)
		assert.Equal(t, model.JobStatusOpen, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Math tutoring", got.Title)

		labels, err := NewCategoryRepo(db).LabelsForJobs(ctx, []string{created.ID})
		require.NoError(t, err)
		require.Len(t, labels[created.ID], 1)
		assert.Equal(t, "math", labels[created.ID][0].Name)
	})
}

func TestJobRepo_Create_ValidationRejected(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db, slog.Default())
		_, err := repo.Create(context.Background(), &model.CreateJobRequest{
			RequesterID: uuid.NewString(),
			Title:       "  ",
			Description: "d",
			WorkPlace:   "w",
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestJobRepo_GetByID_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db, slog.Default())
		_, err := repo.GetByID(context.Background(), uuid.NewString())
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestJobRepo_ListWithConditions(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db, slog.Default())
		parentA := seedMember(t, db, "parent")
		parentB := seedMember(t, db, "parent")

		for i := 0; i < 3; i++ {
			_, err := repo.Create(ctx, &model.CreateJobRequest{
				RequesterID: parentA,
				Title:       "Posting",
				Description: "d",
				WorkPlace:   "Gangnam-gu",
			})
			require.NoError(t, err)
		}
		_, err := repo.Create(ctx, &model.CreateJobRequest{
			RequesterID: parentB,
			Title:       "Posting",
			Description: "d",
			WorkPlace:   "Mapo-gu",
		})
		require.NoError(t, err)

		jobs, total, err := repo.ListWithConditions(ctx, core.JobListParams{
			Conditions: []database.Condition{
				database.WhereCond("requester_id", database.Equal, parentA),
			},
			SortBy:    "created_at",
			SortOrder: model.SortOrderDesc,
			Limit:     2,
			Offset:    0,
		})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
		// The count reflects the predicate, not the page.
		assert.Equal(t, 3, total)
		for _, job := range jobs {
			assert.Equal(t, parentA, job.RequesterID)
		}

		// Second page picks up the remainder without overlap.
		rest, total, err := repo.ListWithConditions(ctx, core.JobListParams{
			Conditions: []database.Condition{
				database.WhereCond("requester_id", database.Equal, parentA),
			},
			SortBy:    "created_at",
			SortOrder: model.SortOrderDesc,
			Limit:     2,
			Offset:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, rest, 1)
		assert.NotContains(t, []string{jobs[0].ID, jobs[1].ID}, rest[0].ID)
	})
}

func TestJobRepo_ListWithConditions_EmptyResult(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db, slog.Default())
		jobs, total, err := repo.ListWithConditions(context.Background(), core.JobListParams{
			Conditions: []database.Condition{
				database.WhereCond("requester_id", database.Equal, uuid.NewString()),
			},
		})
		require.NoError(t, err)
		assert.Empty(t, jobs)
		assert.Zero(t, total)
	})
}

func TestJobRepo_UpdateStatus(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRepo(db, slog.Default())
		parentID := seedMember(t, db, "parent")

		created, err := repo.Create(ctx, &model.CreateJobRequest{
			RequesterID: parentID,
			Title:       "Posting",
			Description: "d",
			WorkPlace:   "Gangnam-gu",
		})
		require.NoError(t, err)

		updated, err := repo.UpdateStatus(ctx, created.ID, model.JobStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusCancelled, updated.Status)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		_, err = repo.UpdateStatus(ctx, uuid.NewString(), model.JobStatusCancelled)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestRegionRepo_RegionsForMember(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRegionRepo(db)

		t.Run("member without tutor profile has zero regions", func(t *testing.T) {
			memberID := seedMember(t, db, "parent")
			regions, err := repo.RegionsForMember(ctx, memberID)
			require.NoError(t, err)
			assert.Empty(t, regions)
		})

		t.Run("tutor profile without registrations has zero regions", func(t *testing.T) {
			memberID := seedMember(t, db, "tutor")
			seedTutorProfile(t, db, memberID)
			regions, err := repo.RegionsForMember(ctx, memberID)
			require.NoError(t, err)
			assert.Empty(t, regions)
		})

		t.Run("registered regions come back sorted", func(t *testing.T) {
			memberID := seedMember(t, db, "tutor")
			seedTutorProfile(t, db, memberID, "Seocho-gu", "Gangnam-gu")
			regions, err := repo.RegionsForMember(ctx, memberID)
			require.NoError(t, err)
			assert.Equal(t, []string{"Gangnam-gu", "Seocho-gu"}, regions)
		})
	})
}

func TestMemberRepo_SummariesByIDs(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMemberRepo(db)

		empty, err := repo.SummariesByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)

		memberID := seedMember(t, db, "parent")
		summaries, err := repo.SummariesByIDs(ctx, []string{memberID, uuid.NewString()})
		require.NoError(t, err)
		// Unknown ids are simply absent.
		require.Len(t, summaries, 1)
		assert.Equal(t, memberID, summaries[memberID].ID)
		assert.NotEmpty(t, summaries[memberID].Name)
		assert.NotEmpty(t, summaries[memberID].Email)
	})
}

func TestCategoryRepo_LabelsForJobs_EmptyInput(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		labels, err := NewCategoryRepo(db).LabelsForJobs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}
