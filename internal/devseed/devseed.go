// Package devseed populates a development database with a small, fixed data
// set: members of every role, tutor profiles with region registrations,
// categories and a handful of postings in various lifecycle states.
// Seeding is idempotent; fixed ids and ON CONFLICT guards make reruns safe.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/byeyali/airang-ssam-sub001/internal/data"
	domainauth "github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
)

// Fixed identities so reruns and local tooling can reference seeded rows.
const (
	AdminMemberID   = "00000000-0000-4000-8000-000000000001"
	ParentOneID     = "00000000-0000-4000-8000-000000000002"
	ParentTwoID     = "00000000-0000-4000-8000-000000000003"
	TutorOneID      = "00000000-0000-4000-8000-000000000004"
	TutorTwoID      = "00000000-0000-4000-8000-000000000005"
	tutorOneProfile = "00000000-0000-4000-8000-000000000104"
	tutorTwoProfile = "00000000-0000-4000-8000-000000000105"

	categoryMath      = "00000000-0000-4000-8000-000000000201"
	categoryEnglish   = "00000000-0000-4000-8000-000000000202"
	categoryChildcare = "00000000-0000-4000-8000-000000000203"
)

type member struct {
	id    string
	name  string
	email string
	role  domainauth.Role
}

var seedMembers = []member{
	{AdminMemberID, "Seed Admin", "admin@airang.local", domainauth.RoleAdmin},
	{ParentOneID, "Park Minji", "parent1@airang.local", domainauth.RoleParent},
	{ParentTwoID, "Lee Soyeon", "parent2@airang.local", domainauth.RoleParent},
	{TutorOneID, "Choi Hana", "tutor1@airang.local", domainauth.RoleTutor},
	{TutorTwoID, "Jung Woojin", "tutor2@airang.local", domainauth.RoleTutor},
}

var seedCategories = map[string]string{
	categoryMath:      "Elementary Math",
	categoryEnglish:   "English Conversation",
	categoryChildcare: "After-school Care",
}

// Run seeds the development data set. It is safe to call repeatedly.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedMembersAndTutors(ctx, db); err != nil {
		return err
	}
	if err := seedCategoryRows(ctx, db); err != nil {
		return err
	}
	if err := seedJobs(ctx, db, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "development seed complete")
	return nil
}

func seedMembersAndTutors(ctx context.Context, db *sql.DB) error {
	for _, m := range seedMembers {
		_, err := db.ExecContext(ctx,
			`INSERT INTO members (id, name, email, role) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			m.id, m.name, m.email, string(m.role))
		if err != nil {
			return fmt.Errorf("seed member %s: %w", m.email, err)
		}
	}

	tutorProfiles := map[string]string{
		tutorOneProfile: TutorOneID,
		tutorTwoProfile: TutorTwoID,
	}
	for profileID, memberID := range tutorProfiles {
		_, err := db.ExecContext(ctx,
			`INSERT INTO tutors (id, member_id) VALUES ($1, $2)
			 ON CONFLICT (member_id) DO NOTHING`,
			profileID, memberID)
		if err != nil {
			return fmt.Errorf("seed tutor profile for %s: %w", memberID, err)
		}
	}

	// Tutor one serves two districts; tutor two stays unregistered so the
	// zero-regions listing path is reproducible locally.
	for _, region := range []string{"Gangnam-gu", "Seocho-gu"} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO tutor_regions (tutor_id, region_name) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			tutorOneProfile, region)
		if err != nil {
			return fmt.Errorf("seed region %s: %w", region, err)
		}
	}
	return nil
}

func seedCategoryRows(ctx context.Context, db *sql.DB) error {
	for id, name := range seedCategories {
		_, err := db.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			id, name)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}
	return nil
}

func seedJobs(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		logger.InfoContext(ctx, "jobs already seeded, skipping", "existing", count)
		return nil
	}

	repo := data.NewJobRepo(db, logger)
	preferred := TutorOneID

	open := []*model.CreateJobRequest{
		{
			RequesterID: ParentOneID,
			Title:       "Weekly math tutoring for 3rd grader",
			Description: "Looking for help with elementary math twice a week.",
			WorkPlace:   "Gangnam-gu",
			CategoryIDs: []string{categoryMath},
		},
		{
			RequesterID:      ParentOneID,
			Title:            "English conversation practice",
			Description:      "Light conversation practice after school.",
			WorkPlace:        "Seocho-gu",
			PreferredTutorID: &preferred,
			CategoryIDs:      []string{categoryEnglish},
		},
		{
			RequesterID: ParentTwoID,
			Title:       "After-school care, weekday evenings",
			Description: "Pickup from school and homework supervision until 7pm.",
			WorkPlace:   "Mapo-gu",
			CategoryIDs: []string{categoryChildcare, categoryMath},
		},
	}

	for _, req := range open {
		if _, err := repo.Create(ctx, req); err != nil {
			return fmt.Errorf("seed job %q: %w", req.Title, err)
		}
	}

	// One posting already matched, inserted directly since matching is owned
	// by an external workflow.
	_, err := db.ExecContext(ctx,
		`INSERT INTO jobs (id, requester_id, title, description, requirements, work_place,
		                   status, matched_tutor_id)
		 VALUES ($1, $2, $3, $4, '', $5, $6, $7)`,
		uuid.NewString(), ParentTwoID,
		"Science fair project coaching",
		"Ongoing engagement, matched last week.",
		"Gangnam-gu", string(model.JobStatusInProgress), TutorOneID)
	if err != nil {
		return fmt.Errorf("seed matched job: %w", err)
	}
	return nil
}

// SessionSaver is the subset of the session store needed for seeding sessions.
type SessionSaver interface {
	Save(ctx context.Context, sess domainauth.Session) error
}

// SeedSession writes a development session for the given member and returns
// its id for use as the session_id cookie value.
func SeedSession(ctx context.Context, store SessionSaver, m domainauth.Session) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.ExpiresAt.IsZero() {
		m.ExpiresAt = time.Now().Add(12 * time.Hour)
	}
	if err := store.Save(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// SessionForRole builds a session for one of the seeded members by role.
func SessionForRole(role domainauth.Role) (domainauth.Session, error) {
	var m member
	switch role {
	case domainauth.RoleAdmin:
		m = seedMembers[0]
	case domainauth.RoleParent:
		m = seedMembers[1]
	case domainauth.RoleTutor:
		m = seedMembers[3]
	default:
		return domainauth.Session{}, fmt.Errorf("no seeded member for role %q", role)
	}
	return domainauth.Session{
		MemberID: m.id,
		Name:     m.name,
		Email:    m.email,
		Role:     m.role,
	}, nil
}
