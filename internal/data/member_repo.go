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

// MemberRepo provides read access to member records for requester summaries.
type MemberRepo struct {
	DB *sql.DB
}

// NewMemberRepo creates a new MemberRepo instance.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{DB: db}
}

var _ core.MemberRepository = (*MemberRepo)(nil)

// SummariesByIDs returns trimmed member summaries (id, name, email only)
// keyed by member id, in one round trip.
func (r *MemberRepo) SummariesByIDs(
	ctx context.Context,
	memberIDs []string,
) (map[string]model.MemberSummary, error) {
	res := make(map[string]model.MemberSummary, len(memberIDs))
	if len(memberIDs) == 0 {
		return res, nil
	}

	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT id, name, email FROM members WHERE id = ANY($1)`, memberIDs)
		if err != nil {
			return err
		}
		summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.MemberSummary])
		if err != nil {
			return err
		}
		for _, s := range summaries {
			res[s.ID] = s
		}
		return nil
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return res, nil
}
