package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data/pgxutil"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

// RegionRepo resolves tutor region registrations. It is read-only; region
// management belongs to tutor profile management.
type RegionRepo struct {
	DB *sql.DB
}

// NewRegionRepo creates a new RegionRepo instance.
func NewRegionRepo(db *sql.DB) *RegionRepo {
	return &RegionRepo{DB: db}
}

var _ core.RegionDirectory = (*RegionRepo)(nil)

// RegionsForMember returns the region names the tutor behind the given member
// identity is registered to serve. The member-id to tutor-profile-id
// translation is an explicit step: a member without a tutor profile yields
// zero regions, never an error. Store failures surface as Unavailable so the
// caller can distinguish "no regions" from "could not look up regions".
func (r *RegionRepo) RegionsForMember(ctx context.Context, memberID string) ([]string, error) {
	var regions []string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var tutorID string
		row := conn.QueryRow(ctx, `SELECT id FROM tutors WHERE member_id = $1`, memberID)
		if scanErr := row.Scan(&tutorID); scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				// No tutor profile: zero regions, signaled to the caller as
				// an empty set rather than an error.
				return nil
			}
			return scanErr
		}

		rows, queryErr := conn.Query(ctx,
			`SELECT region_name FROM tutor_regions WHERE tutor_id = $1 ORDER BY region_name`,
			tutorID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		regions, collectErr = pgx.CollectRows(rows, pgx.RowTo[string])
		return collectErr
	})
	if err != nil {
		mapped := apperrors.MapDBError(err)
		if apperrors.GetCode(mapped) == "" || apperrors.IsInternal(mapped) {
			mapped = apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "region directory lookup failed")
		}
		return nil, mapped
	}
	return regions, nil
}
