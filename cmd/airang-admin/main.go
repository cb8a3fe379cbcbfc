// Command airang-admin provides operator tooling for local development:
// running migrations, seeding development data and minting dev sessions.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/byeyali/airang-ssam-sub001/config"
	redisadapter "github.com/byeyali/airang-ssam-sub001/internal/adapters/redis"
	"github.com/byeyali/airang-ssam-sub001/internal/bootstrap"
	"github.com/byeyali/airang-ssam-sub001/internal/devseed"
	domainauth "github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage()
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrate,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"dev-session": {
			name:        "dev-session",
			description: "Mint a development session for a seeded member and print its id",
			run:         runDevSession,
		},
	}
}

func printUsage() {
	fmt.Fprintf(os.Stdout, "Usage: airang-admin <command> [flags]\n\n")
	fmt.Fprintf(os.Stdout, "Available commands:\n")
	for _, c := range commands() {
		fmt.Fprintf(os.Stdout, "  %-14s %s\n", c.name, c.description)
	}
}

func connectDB(cmdCtx *commandContext) (*sql.DB, error) {
	return bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig:    cmdCtx.Config.Postgres,
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
}

func runMigrate(cmdCtx *commandContext, _ []string) error {
	db, err := connectDB(cmdCtx)
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, db)

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultMigrationTimeout)
	defer cancel()
	return bootstrap.RunMigrations(ctx, db, cmdCtx.Logger)
}

func runDBSeed(cmdCtx *commandContext, _ []string) error {
	db, err := connectDB(cmdCtx)
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, db)

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultMigrationTimeout)
	defer cancel()

	if err := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); err != nil {
		return err
	}
	return devseed.Run(ctx, db, cmdCtx.Logger)
}

func runDevSession(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("dev-session", flag.ContinueOnError)
	roleFlag := fs.String("role", "parent", "role of the seeded member (parent, tutor, admin)")
	ttlFlag := fs.Duration("ttl", 12*time.Hour, "session lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := devseed.SessionForRole(domainauth.Role(*roleFlag))
	if err != nil {
		return err
	}
	sess.ExpiresAt = time.Now().Add(*ttlFlag)

	redisClient, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		DBConfig:    cmdCtx.Config.Postgres,
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, redisClient)

	store := redisadapter.NewSessionStore(redisClient)
	id, err := devseed.SeedSession(cmdCtx.Ctx, store, sess)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "session_id=%s role=%s member_id=%s expires=%s\n",
		id, sess.Role, sess.MemberID, sess.ExpiresAt.Format(time.RFC3339))
	return nil
}

func closeQuietly(logger *slog.Logger, closer interface{ Close() error }) {
	if err := closer.Close(); err != nil {
		logger.Error("close failed", "error", err)
	}
}
