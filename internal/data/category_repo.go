package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data/pgxutil"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

// CategoryRepo provides read access to category tags.
type CategoryRepo struct {
	DB *sql.DB
}

// NewCategoryRepo creates a new CategoryRepo instance.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{DB: db}
}

var _ core.CategoryRepository = (*CategoryRepo)(nil)

// LabelsForJobs returns flat {id, name} category labels keyed by job id for
// all given jobs in a single query.
func (r *CategoryRepo) LabelsForJobs(
	ctx context.Context,
	jobIDs []string,
) (map[string][]model.CategoryLabel, error) {
	res := make(map[string][]model.CategoryLabel, len(jobIDs))
	if len(jobIDs) == 0 {
		return res, nil
	}

	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT jc.job_id, c.id, c.name
			FROM job_categories jc
			JOIN categories c ON c.id = jc.category_id
			WHERE jc.job_id = ANY($1)
			ORDER BY c.name
		`, jobIDs)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var jobID string
			var label model.CategoryLabel
			if scanErr := rows.Scan(&jobID, &label.ID, &label.Name); scanErr != nil {
				return scanErr
			}
			res[jobID] = append(res[jobID], label)
		}
		return rows.Err()
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return res, nil
}
