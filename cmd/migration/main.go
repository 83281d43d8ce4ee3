package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/football-stats/db"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const usage = "usage: %s <up | down [steps] | goto <version> | version | force <version>>\n"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "football-stats-migration",
		Env:     cfg.AppEnv,
	})

	code := 0
	if err := migrateDB(cfg.DBURL, os.Getenv("MIGRATIONS_DIR"), os.Args[1:], logger); err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		code = 1
	}
	_ = logger.Sync()
	os.Exit(code)
}

func migrateDB(dbURL, dir string, args []string, logger *logging.Logger) error {
	if strings.TrimSpace(dbURL) == "" {
		return errors.New("DB_URL is required")
	}

	cmd, err := parseCommand(args)
	if err != nil {
		return err
	}

	m, err := newMigrator(dbURL, dir)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("close migrator", "error", err)
		}
	}()

	return cmd.run(m, logger)
}

// newMigrator reads migrations from dir when set, otherwise from the copy
// embedded in the binary.
func newMigrator(dbURL, dir string) (*migrate.Migrate, error) {
	if dir = strings.TrimSpace(dir); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve MIGRATIONS_DIR: %w", err)
		}
		m, err := migrate.New("file://"+filepath.ToSlash(abs), dbURL)
		if err != nil {
			return nil, fmt.Errorf("open migrations in %s: %w", abs, err)
		}
		return m, nil
	}

	src, err := iofs.New(db.Migrations, db.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

type command struct {
	name    string
	version uint
	steps   int
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errors.New("missing command")
	}

	cmd := command{name: strings.ToLower(strings.TrimSpace(args[0]))}
	rest := args[1:]
	switch cmd.name {
	case "up", "version":
		return cmd, nil
	case "down":
		cmd.steps = 1
		if len(rest) > 0 {
			steps, err := strconv.Atoi(strings.TrimSpace(rest[0]))
			if err != nil || steps <= 0 {
				return command{}, fmt.Errorf("down steps must be a positive integer, got %q", rest[0])
			}
			cmd.steps = steps
		}
		return cmd, nil
	case "goto", "force":
		if len(rest) == 0 {
			return command{}, fmt.Errorf("%s requires a version", cmd.name)
		}
		version, err := strconv.ParseUint(strings.TrimSpace(rest[0]), 10, 32)
		if err != nil {
			return command{}, fmt.Errorf("invalid version %q: %w", rest[0], err)
		}
		cmd.version = uint(version)
		return cmd, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", args[0])
	}
}

func (c command) run(m *migrate.Migrate, logger *logging.Logger) error {
	switch c.name {
	case "up":
		if err := ignoreNoChange(m.Up()); err != nil {
			return err
		}
	case "down":
		if err := ignoreNoChange(m.Steps(-c.steps)); err != nil {
			return err
		}
	case "goto":
		if err := ignoreNoChange(m.Migrate(c.version)); err != nil {
			return err
		}
	case "force":
		if err := m.Force(int(c.version)); err != nil {
			return fmt.Errorf("force version %d: %w", c.version, err)
		}
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("schema version", "command", c.name, "version", "none")
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		logger.Info("schema version", "command", c.name, "version", version, "dirty", dirty)
	}
	return nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
