package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*ImportLedger, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "import.db")
	ledger, err := NewImportLedger(dbPath)
	require.NoError(t, err)
	require.NoError(t, ledger.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = ledger.Close()
	})
	return ledger, dbPath
}

func TestLedgerRecordAndSeen(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	seen, err := ledger.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, ledger.Record(ctx, ImportRecord{
		Hash:          "abc123",
		SourceFile:    "statement.ofx",
		TransactionID: "tx-1",
		Description:   "COFFEE SHOP",
	}))

	seen, err = ledger.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, seen)

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLedgerRecordIsIdempotent(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	rec := ImportRecord{Hash: "dup", SourceFile: "a.ofx"}
	require.NoError(t, ledger.Record(ctx, rec))
	require.NoError(t, ledger.Record(ctx, rec))

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLedgerRejectsEmptyHash(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.Error(t, ledger.Record(ctx, ImportRecord{}))

	_, err := ledger.Seen(ctx, "")
	require.Error(t, err)
}

func TestLedgerPersistsAcrossReopen(t *testing.T) {
	ledger, dbPath := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Record(ctx, ImportRecord{Hash: "persisted"}))
	require.NoError(t, ledger.Close())

	reopened, err := NewImportLedger(dbPath)
	require.NoError(t, err)
	defer func() {
		_ = reopened.Close()
	}()
	require.NoError(t, reopened.Migrate(ctx))

	seen, err := reopened.Seen(ctx, "persisted")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ledger, _ := newTestLedger(t)
	require.NoError(t, ledger.Migrate(context.Background()))
}

func TestNewImportLedgerRejectsEmptyPath(t *testing.T) {
	_, err := NewImportLedger("")
	require.Error(t, err)
}
