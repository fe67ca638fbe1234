package migration

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports required for driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Dialect - вид базы, для которой применяются миграции
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	dialect     Dialect
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(dialect Dialect, databaseURL string, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		dialect:     dialect,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

// DefaultEngine - реальная реализация поверх встроенных SQL-файлов
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// SQLiteURL строит URL для драйвера sqlite3 по пути к файлу
func SQLiteURL(path string) string {
	return "sqlite3://" + path
}

// PostgresURL переводит postgres:// DSN на схему драйвера pgx/v5
func PostgresURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

func (mg *Migration) Up() (err error) {
	src, err := iofs.New(migrationsFS, "migrations/"+string(mg.dialect))
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := mg.engine(src, mg.databaseURL)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
