package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	createTrackingTable = `CREATE TABLE IF NOT EXISTS schema_migrations`
	checkApplied        = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	recordApplied       = `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("migrations/001_init.sql"))
	assert.Equal(t, "002", Version("002_add_index.sql"))
}

func TestMigrator_Apply(t *testing.T) {
	ctx := context.Background()
	script := "CREATE TABLE module (mid VARCHAR(4) PRIMARY KEY);"

	t.Run("new version runs in a transaction", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(createTrackingTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(checkApplied)).WithArgs("001").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(script)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(regexp.QuoteMeta(recordApplied)).WithArgs("001", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, NewMigrator(mock).Apply(ctx, "001", script))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applied version is skipped", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(createTrackingTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(checkApplied)).WithArgs("001").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, NewMigrator(mock).Apply(ctx, "001", script))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed script rolls back", func(t *testing.T) {
		mock := newMock(t)
		scriptErr := errors.New("syntax error")
		mock.ExpectExec(createTrackingTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(checkApplied)).WithArgs("001").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(script)).WillReturnError(scriptErr)
		mock.ExpectRollback()

		err := NewMigrator(mock).Apply(ctx, "001", script)
		assert.ErrorIs(t, err, scriptErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrator_MigrateFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_second.sql"), []byte("SELECT 2;"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_first.sql"), []byte("SELECT 1;"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a migration"), 0o600))

	mock := newMock(t)
	for _, m := range []struct{ version, script string }{{"001", "SELECT 1;"}, {"002", "SELECT 2;"}} {
		mock.ExpectExec(createTrackingTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(regexp.QuoteMeta(checkApplied)).WithArgs(m.version).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(m.script)).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(regexp.QuoteMeta(recordApplied)).WithArgs(m.version, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
	}

	require.NoError(t, NewMigrator(mock).MigrateFromDirectory(context.Background(), dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}
