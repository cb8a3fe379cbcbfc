package data

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data/database"
	"github.com/byeyali/airang-ssam-sub001/internal/data/pgxutil"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

// jobSortColumns whitelists sortable columns. Unknown sort fields fall back
// to created_at rather than reaching the database.
var jobSortColumns = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"status":     "status",
}

var jobColumns = []string{
	"id",
	"requester_id",
	"title",
	"description",
	"requirements",
	"work_place",
	"status",
	"matched_tutor_id",
	"preferred_tutor_id",
	"created_at",
	"updated_at",
}

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewJobRepo creates a new JobRepo instance.
func NewJobRepo(db *sql.DB, logger *slog.Logger) *JobRepo {
	return &JobRepo{DB: db, logger: logger}
}

var _ core.JobRepository = (*JobRepo)(nil)

// ListWithConditions runs the page query and the total count under the same
// condition set, on the same connection, so the count always reflects the
// page's predicate. Sort ties are broken by id ascending so pagination across
// repeated calls is stable when sort-key values are equal.
func (r *JobRepo) ListWithConditions(
	ctx context.Context,
	params core.JobListParams,
) ([]*model.Job, int, error) {
	sortBy, ok := jobSortColumns[params.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != model.SortOrderAsc && sortOrder != model.SortOrderDesc {
		sortOrder = model.SortOrderDesc
	}
	limit := params.Limit
	if limit < 1 {
		limit = model.DefaultPageSize
	}
	if limit > model.MaxPageSize {
		limit = model.MaxPageSize
	}
	offset := max(params.Offset, 0)

	pageQuery, pageArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithColumns(jobColumns...),
		database.WithConditions(params.Conditions...),
		database.WithOrderBy(sortBy, sortOrder),
		database.WithTieBreak("id"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	))
	countQuery, countArgs := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithConditions(params.Conditions...),
		database.WithCountOnly(),
	))

	var jobs []*model.Job
	var total int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, pageQuery, pageArgs...)
		if err != nil {
			return err
		}
		jobs, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Job])
		if err != nil {
			return err
		}
		return conn.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	}); err != nil {
		return nil, 0, apperrors.MapDBError(err)
	}
	return jobs, total, nil
}

// GetByID retrieves a single job posting.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query, args := database.BuildListQuery(database.NewListQueryOptions("jobs",
		database.WithColumns(jobColumns...),
		database.WithCondition(database.WhereCond("id", database.Equal, id)),
	))

	var job *model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		job, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// Create inserts a new open posting and its category associations in one
// transaction. The posting id is generated here.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	id := uuid.NewString()
	var job *model.Job
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO jobs (id, requester_id, title, description, requirements,
			                  work_place, status, preferred_tutor_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, requester_id, title, description, requirements, work_place,
			          status, matched_tutor_id, preferred_tutor_id, created_at, updated_at
		`, id, req.RequesterID, req.Title, req.Description, req.Requirements,
			req.WorkPlace, model.JobStatusOpen, req.PreferredTutorID)
		if err != nil {
			return err
		}
		job, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Job])
		if err != nil {
			return err
		}

		for _, categoryID := range req.CategoryIDs {
			if _, insErr := tx.Exec(ctx, `
				INSERT INTO job_categories (job_id, category_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, id, categoryID); insErr != nil {
				return insErr
			}
		}
		return nil
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	r.logger.InfoContext(ctx, "job created", "job_id", job.ID, "requester_id", job.RequesterID)
	return job, nil
}

// UpdateStatus persists a status change and returns the updated posting.
// Transition validity is the caller's responsibility.
func (r *JobRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.JobStatus,
) (*model.Job, error) {
	var job *model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE jobs
			SET status = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, requester_id, title, description, requirements, work_place,
			          status, matched_tutor_id, preferred_tutor_id, created_at, updated_at
		`, id, status)
		if err != nil {
			return err
		}
		job, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}
