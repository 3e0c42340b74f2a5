package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/infrastructure/journal"
)

func newTestStore(t *testing.T) *journal.Store {
	t.Helper()
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func registro(session string, dir transfer.Direction, status string) transfer.SubmissionRecord {
	return transfer.SubmissionRecord{
		SessionID: session,
		StoreID:   1,
		SellerID:  9,
		Direction: dir,
		ItemCount: 2,
		Status:    status,
		Message:   "",
	}
}

func TestStore_RecordYListRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSubmission(ctx, registro("s-1", transfer.DirectionAdd, transfer.SubmissionStatusOK)))
	require.NoError(t, s.RecordSubmission(ctx, registro("s-2", transfer.DirectionRemove, transfer.SubmissionStatusValidation)))

	entries, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// El más reciente primero.
	assert.Equal(t, "s-2", entries[0].SessionID)
	assert.Equal(t, "remove", entries[0].Direction)
	assert.Equal(t, transfer.SubmissionStatusValidation, entries[0].Status)
	assert.Equal(t, "s-1", entries[1].SessionID)
	assert.Equal(t, "add", entries[1].Direction)

	assert.Equal(t, int64(1), entries[0].StoreID)
	assert.Equal(t, int64(9), entries[0].SellerID)
	assert.Equal(t, 2, entries[0].ItemCount)
	assert.NotEmpty(t, entries[0].CreatedAt)
}

func TestStore_ListRecentRespetaElLimite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordSubmission(ctx, registro("s-x", transfer.DirectionAdd, transfer.SubmissionStatusOK)))
	}

	entries, err := s.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStore_ListRecentVacio(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_GuardaElMensajeDeFallo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := registro("s-1", transfer.DirectionAdd, transfer.SubmissionStatusRejected)
	rec.Message = "el vendedor no pertenece a la tienda seleccionada"
	require.NoError(t, s.RecordSubmission(ctx, rec))

	entries, err := s.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rec.Message, entries[0].Message)
}
