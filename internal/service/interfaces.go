package service

import (
	"context"

	"comments-api/internal/domain"
)

// CommentValidator checks a create request before it reaches the store.
type CommentValidator interface {
	ValidateComment(in *domain.CreateCommentInput) error
}

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// ListComments returns every comment, newest first.
	ListComments(ctx context.Context) ([]domain.Comment, error)
	// CreateComment validates the input and stores a new comment.
	// Validation failures are returned as *domain.ValidationError.
	CreateComment(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error)
}
