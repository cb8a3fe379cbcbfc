package bootstrap

import (
	"database/sql"
	"log/slog"

	redisclient "github.com/redis/go-redis/v9"

	redisadapter "github.com/byeyali/airang-ssam-sub001/internal/adapters/redis"
	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/data"
	"github.com/byeyali/airang-ssam-sub001/internal/service"
)

// ServiceContainer holds the wired application services and the ports they
// were built from.
type ServiceContainer struct {
	Listing  *service.ListingService
	Jobs     *service.JobService
	Sessions core.SessionStore
}

// BuildServices wires repositories and services from the shared database and
// Redis handles.
func BuildServices(db *sql.DB, redisClient redisclient.UniversalClient, logger *slog.Logger) ServiceContainer {
	jobRepo := data.NewJobRepo(db, logger)
	regionRepo := data.NewRegionRepo(db)
	categoryRepo := data.NewCategoryRepo(db)
	memberRepo := data.NewMemberRepo(db)

	listing := service.NewListingService(service.ListingServiceOptions{
		Jobs:       jobRepo,
		Regions:    regionRepo,
		Categories: categoryRepo,
		Members:    memberRepo,
		Logger:     logger,
	})
	jobs := service.NewJobService(service.JobServiceOptions{
		Jobs:       jobRepo,
		Regions:    regionRepo,
		Categories: categoryRepo,
		Members:    memberRepo,
		Logger:     logger,
	})

	return ServiceContainer{
		Listing:  listing,
		Jobs:     jobs,
		Sessions: redisadapter.NewSessionStore(redisClient),
	}
}
