package migration

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotURL string
	engine := func(src source.Driver, db string) (Migrator, error) {
		gotURL = db
		// встроенные миграции доступны через source
		first, err := src.First()
		require.NoError(t, err)
		assert.Equal(t, uint(1), first)
		return mockM, nil
	}

	mg := NewMigration(DialectSQLite, SQLiteURL("/tmp/h.db"), engine)
	err := mg.Up()

	assert.NoError(t, err)
	assert.Equal(t, "sqlite3:///tmp/h.db", gotURL)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(src source.Driver, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(DialectPostgres, PostgresURL("postgres://u:p@localhost/vin"), engine)
	err := mg.Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(src source.Driver, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	mg := NewMigration(DialectSQLite, "", engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "engine crash")
}

func TestMigration_Up_CloseErrorReported(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, errors.New("db close failed"))

	engine := func(src source.Driver, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(DialectSQLite, "", engine).Up()
	assert.EqualError(t, err, "db close failed")
}

func TestMigration_Up_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	err := NewMigration(DialectSQLite, SQLiteURL(path), nil).Up()
	require.NoError(t, err)

	// повторный запуск не считается ошибкой
	err = NewMigration(DialectSQLite, SQLiteURL(path), nil).Up()
	assert.NoError(t, err)
}

func TestPostgresURL(t *testing.T) {
	assert.Equal(t, "pgx5://u@h/db", PostgresURL("postgres://u@h/db"))
	assert.Equal(t, "pgx5://u@h/db", PostgresURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://u@h/db", PostgresURL("pgx5://u@h/db"))
}
