package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/okarhu/gymrecap/internal/config"
	"github.com/okarhu/gymrecap/internal/envstruct"
	"github.com/okarhu/gymrecap/internal/errors"
	"github.com/okarhu/gymrecap/internal/recap"
	"github.com/okarhu/gymrecap/internal/sqlite"
)

// application carries the dependencies shared by every subcommand.
type application struct {
	logger    *slog.Logger
	lookupEnv func(string) (string, bool)
	out       io.Writer

	db      *sqlite.Database
	service *recap.Service
}

// envConfig is the environment layer of the configuration. Every variable is
// optional; empty means "fall through to the config file or the default".
type envConfig struct {
	// SqliteURL points at the SQLite database. ":memory:" gives an ephemeral
	// in-memory database.
	SqliteURL string `env:"GYMRECAP_SQLITE_URL" envDefault:""`
	// ConfigPath overrides the config file location.
	ConfigPath string `env:"GYMRECAP_CONFIG" envDefault:""`
}

// settings is the fully layered configuration a command runs with.
type settings struct {
	dbURL         string
	preferredUnit recap.WeightUnit
}

// resolveSettings layers the configuration: flag over environment over
// config file over the XDG default. The preferred unit has no flag or env
// layer; it comes from the config file alone and is empty when unset.
func (app *application) resolveSettings(dbFlagValue string) (settings, error) {
	var env envConfig
	if err := envstruct.Populate(&env, app.lookupEnv); err != nil {
		return settings{}, errors.Wrap(err, "populate env config")
	}

	configPath := env.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return settings{}, errors.Wrap(err, "load config file", slog.String("path", configPath))
	}

	resolved := settings{dbURL: config.DefaultDBPath()}
	if cfg.DBPath != nil && *cfg.DBPath != "" {
		resolved.dbURL = *cfg.DBPath
	}
	if env.SqliteURL != "" {
		resolved.dbURL = env.SqliteURL
	}
	if dbFlagValue != "" {
		resolved.dbURL = dbFlagValue
	}

	if cfg.PreferredUnit != nil && *cfg.PreferredUnit != "" {
		unit := recap.WeightUnit(*cfg.PreferredUnit)
		if !unit.Valid() {
			return settings{}, fmt.Errorf("invalid preferred_unit %q in %s: want kg or lbs", *cfg.PreferredUnit, configPath)
		}
		resolved.preferredUnit = unit
	}

	return resolved, nil
}

// open connects to the database and builds the recap service. It is called
// from each command's RunE rather than at startup so that --help never
// touches the filesystem.
func (app *application) open(ctx context.Context, dbFlag string) error {
	resolved, err := app.resolveSettings(dbFlag)
	if err != nil {
		return err
	}

	if resolved.dbURL != ":memory:" {
		dir := filepath.Dir(resolved.dbURL)
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create database directory", slog.String("path", dir))
		}
	}

	db, err := sqlite.NewDatabase(ctx, resolved.dbURL, app.logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", resolved.dbURL))
	}
	app.db = db
	app.service = recap.NewService(db, app.logger)

	// A preferred_unit in the config file is declarative: it wins over
	// whatever the profile row currently holds.
	if resolved.preferredUnit != "" {
		if err = app.service.SetPreferredUnit(ctx, resolved.preferredUnit); err != nil {
			return errors.Wrap(err, "apply configured unit")
		}
	}
	return nil
}

// close releases the database if a command opened it.
func (app *application) close(ctx context.Context) {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "close database", errors.SlogError(err))
	}
}
