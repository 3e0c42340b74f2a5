// Package journal persiste una bitácora local de envíos de traspaso en SQLite.
// Es un registro de apoyo para el operador (qué se intentó enviar y con qué
// resultado); la fuente de verdad del stock sigue siendo el backend.
package journal

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
)

// Verificar en tiempo de compilación que Store implementa transfer.Journal.
var _ transfer.Journal = (*Store)(nil)

// Store bitácora respaldada por un archivo SQLite local.
type Store struct {
	db *sql.DB
}

// NewStore abre (o crea) la base local y su esquema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `
	CREATE TABLE IF NOT EXISTS transfer_submissions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT NOT NULL,
		store_id    INTEGER NOT NULL,
		seller_id   INTEGER NOT NULL,
		direction   TEXT NOT NULL CHECK(direction IN ('add','remove')),
		item_count  INTEGER NOT NULL,
		status      TEXT NOT NULL,
		message     TEXT,
		created_at  DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordSubmission inserta una fila por intento de envío.
func (s *Store) RecordSubmission(ctx context.Context, rec transfer.SubmissionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transfer_submissions
			(session_id, store_id, seller_id, direction, item_count, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.StoreID, rec.SellerID, string(rec.Direction),
		rec.ItemCount, rec.Status, rec.Message, time.Now().UTC(),
	)
	return err
}

// ListRecent devuelve los últimos intentos registrados, el más reciente primero.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]dto.JournalEntryResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, store_id, seller_id, direction, item_count, status, COALESCE(message, ''), created_at
		FROM transfer_submissions
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dto.JournalEntryResponse
	for rows.Next() {
		var e dto.JournalEntryResponse
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.SessionID, &e.StoreID, &e.SellerID,
			&e.Direction, &e.ItemCount, &e.Status, &e.Message, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		out = append(out, e)
	}
	return out, rows.Err()
}
