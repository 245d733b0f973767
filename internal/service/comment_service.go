package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comments-api/internal/domain"
	"comments-api/internal/metrics"
	"comments-api/internal/repository"
)

// CommentService runs the list and create pipelines over a CommentRepository.
type CommentService struct {
	repo      repository.CommentRepository
	validator CommentValidator
	now       func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(repo repository.CommentRepository, v CommentValidator) *CommentService {
	return &CommentService{
		repo:      repo,
		validator: v,
		now:       time.Now,
	}
}

// ListComments returns every comment, newest first.
func (s *CommentService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.repo.ListByDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment validates in, dates it and stores it. The stored record,
// not the input, is returned.
func (s *CommentService) CreateComment(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error) {
	if err := s.validator.ValidateComment(&in); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ObserveValidationFailure(ve.Fields()...)
		}
		return nil, err
	}

	stored, err := s.repo.Insert(ctx, domain.NewComment(in, s.now()))
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.CommentsCreatedTotal.Inc()
	return stored, nil
}
