package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comments-api/internal/domain"
	"comments-api/internal/metrics"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListByDateDesc returns all comments ordered by date, newest first.
func (r *PostgresCommentRepository) ListByDateDesc(ctx context.Context) (comments []domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveStoreOperation("list", timer, err) }()

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, email, comment, date
		FROM comments
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query comments: %w", domain.ErrStorage, err)
	}

	comments, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Comment])
	if err != nil {
		return nil, fmt.Errorf("%w: scan comments: %w", domain.ErrStorage, err)
	}

	// Encode as [] rather than null.
	if comments == nil {
		comments = []domain.Comment{}
	}
	for i := range comments {
		comments[i].Date = comments[i].Date.UTC()
	}

	return comments, nil
}

// Insert stores c in a single statement and returns the stored row.
func (r *PostgresCommentRepository) Insert(ctx context.Context, c *domain.Comment) (stored *domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveStoreOperation("insert", timer, err) }()

	out := domain.Comment{}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO comments (name, email, comment, date)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING id::text, name, email, comment, date
	`, c.Name, c.Email, c.Comment, nullableTime(c.Date)).Scan(
		&out.ID, &out.Name, &out.Email, &out.Comment, &out.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert comment: %w", domain.ErrStorage, err)
	}
	out.Date = out.Date.UTC()

	return &out, nil
}

// Ping checks the connection pool.
func (r *PostgresCommentRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", domain.ErrStorage, err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
