// Package postgres implements the URL store on top of PostgreSQL.
//
// Identifier allocation relies on the table's sequence: ids are unique and
// monotonic, with gaps from failed transactions being acceptable. Short code
// uniqueness is enforced by the column's unique constraint, not by callers.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"urlshortener/internal/entity"
)

type urlRecord struct {
	ID          int64          `db:"id"`
	OriginalURL string         `db:"original_url"`
	ShortCode   sql.NullString `db:"short_code"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *urlRecord) toURL() *entity.URL {
	return &entity.URL{
		ID:          r.ID,
		OriginalURL: r.OriginalURL,
		ShortCode:   r.ShortCode.String,
		CreatedAt:   r.CreatedAt,
	}
}

type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{
		db: db,
	}
}

// InitIDFloor moves the id sequence to floor so that issued codes have a
// minimum visible length and low ids stay reserved. It runs once at startup
// and is skipped when the table already holds records.
func (r *URLRepository) InitIDFloor(ctx context.Context, floor int64) error {
	const op = "database.postgres.URLRepository.InitIDFloor"

	var empty bool
	query := `SELECT NOT EXISTS (SELECT 1 FROM urls)`

	if err := r.db.GetContext(ctx, &empty, query); err != nil {
		return fmt.Errorf("%s: failed to check urls table: %w", op, err)
	}
	if !empty {
		return nil
	}

	query = `SELECT setval(pg_get_serial_sequence('urls', 'id'), $1, false)`

	if _, err := r.db.ExecContext(ctx, query, floor); err != nil {
		return fmt.Errorf("%s: failed to set id floor: %w", op, err)
	}

	return nil
}

// Create inserts a new record with a NULL short code and returns it with the
// freshly assigned id. The short code is attached in a second write once it
// has been derived from the id.
func (r *URLRepository) Create(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "database.postgres.URLRepository.Create"

	rec := new(urlRecord)
	query := `INSERT INTO urls (original_url)
		VALUES ($1)
		RETURNING id, original_url, short_code, created_at`

	err := r.db.GetContext(ctx, rec, query, originalURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create url record: %w", op, err)
	}

	return rec.toURL(), nil
}

// AttachShortCode sets the short code on the record with the given id.
// A missing id is a silent no-op: ids are store-issued immediately before
// this call, so an absent row means the caller abandoned the record.
func (r *URLRepository) AttachShortCode(ctx context.Context, id int64, shortCode string) error {
	const op = "database.postgres.URLRepository.AttachShortCode"

	query := `UPDATE urls
		SET short_code = $1
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, shortCode, id)
	if err != nil {
		if isUniqueViolationError(err) {
			return fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		}

		return fmt.Errorf("%s: failed to attach short code: %w", op, err)
	}

	return nil
}

// GetByShortCode retrieves a record by exact short code match.
func (r *URLRepository) GetByShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "database.postgres.URLRepository.GetByShortCode"

	rec := new(urlRecord)
	query := `SELECT id, original_url, short_code, created_at
		FROM urls
		WHERE short_code = $1`

	err := r.db.GetContext(ctx, rec, query, shortCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get url record: %w", op, err)
	}

	return rec.toURL(), nil
}
