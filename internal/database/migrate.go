package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"consult-hub/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is one versioned schema change.
type Migration struct {
	Version uint
	Name    string
	UpSQL   string
}

// MigrationStatus is a migration together with its state in the database.
type MigrationStatus struct {
	Migration
	Applied bool
	Dirty   bool
}

// LoadMigrations reads the embedded migrations in version order.
func LoadMigrations() ([]Migration, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()
	return readMigrations(src)
}

func readMigrations(src source.Driver) ([]Migration, error) {
	var out []Migration

	version, err := src.First()
	for err == nil {
		m, readErr := readUp(src, version)
		if readErr != nil {
			return nil, readErr
		}
		out = append(out, m)
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("enumerate migrations: %w", err)
	}
	return out, nil
}

func readUp(src source.Driver, version uint) (Migration, error) {
	r, name, err := src.ReadUp(version)
	if err != nil {
		return Migration{}, fmt.Errorf("read migration %d: %w", version, err)
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		return Migration{}, fmt.Errorf("read migration %d: %w", version, err)
	}
	return Migration{Version: version, Name: name, UpSQL: string(body)}, nil
}

// splitStatements breaks a migration into single statements; the Oracle
// driver executes one statement per call and rejects a trailing semicolon.
func splitStatements(script string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(strings.TrimRight(line, " \t\r"))
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSuffix(strings.TrimSpace(cur.String()), ";"))
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

// Migrator applies migrations and records them in schema_migrations.
type Migrator struct {
	db         *sqlx.DB
	migrations []Migration
	now        func() time.Time
}

// NewMigrator creates a migrator for db over migrations.
func NewMigrator(db *sqlx.DB, migrations []Migration) *Migrator {
	return &Migrator{db: db, migrations: migrations, now: time.Now}
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var n int
	if err := m.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("check schema_migrations: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (
    version    NUMBER(19) PRIMARY KEY,
    dirty      NUMBER(1) DEFAULT 0 NOT NULL,
    applied_at TIMESTAMP WITH TIME ZONE NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

type versionRow struct {
	Version uint `db:"VERSION"`
	Dirty   bool `db:"DIRTY"`
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[uint]bool, error) {
	var rows []versionRow
	if err := m.db.SelectContext(ctx, &rows, `SELECT version, dirty FROM schema_migrations ORDER BY version`); err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[uint]bool, len(rows))
	for _, r := range rows {
		applied[r.Version] = r.Dirty
	}
	return applied, nil
}

// Status reports every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MigrationStatus, len(m.migrations))
	for i, mig := range m.migrations {
		dirty, ok := applied[mig.Version]
		out[i] = MigrationStatus{Migration: mig, Applied: ok && !dirty, Dirty: dirty}
	}
	return out, nil
}

// Up applies every pending migration in order and returns the applied versions.
// A migration that fails is left dirty and blocks later runs until fixed by hand.
func (m *Migrator) Up(ctx context.Context) ([]uint, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}
	for v, dirty := range applied {
		if dirty {
			return nil, fmt.Errorf("schema_migrations is dirty at version %d", v)
		}
	}

	var done []uint
	for _, mig := range m.migrations {
		if _, ok := applied[mig.Version]; ok {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return done, err
		}
		done = append(done, mig.Version)
	}
	return done, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	log := logger.Get().With(zap.Uint("version", mig.Version), zap.String("name", mig.Name))

	// DDL commits implicitly on Oracle, so the dirty flag stands in for a transaction.
	if _, err := m.db.ExecContext(ctx, m.db.Rebind(`INSERT INTO schema_migrations (version, dirty, applied_at) VALUES (?, 1, ?)`),
		mig.Version, m.now()); err != nil {
		return fmt.Errorf("mark migration %d dirty: %w", mig.Version, err)
	}

	for _, stmt := range splitStatements(mig.UpSQL) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			log.Error("Migration failed", zap.Error(err))
			return fmt.Errorf("migration %d (%s): %w", mig.Version, mig.Name, err)
		}
	}

	if _, err := m.db.ExecContext(ctx, m.db.Rebind(`UPDATE schema_migrations SET dirty = 0 WHERE version = ?`), mig.Version); err != nil {
		return fmt.Errorf("mark migration %d clean: %w", mig.Version, err)
	}
	log.Info("Executed migration")
	return nil
}
