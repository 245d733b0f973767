package repository

import (
	"context"

	"comments-api/internal/domain"
)

// CommentRepository defines methods for comment data access.
// Implementations wrap every failure with domain.ErrStorage.
type CommentRepository interface {
	// ListByDateDesc returns every comment, newest first.
	ListByDateDesc(ctx context.Context) ([]domain.Comment, error)
	// Insert stores c and returns the stored record with its assigned ID.
	Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
