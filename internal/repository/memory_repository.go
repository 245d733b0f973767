package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"comments-api/internal/domain"
	"comments-api/internal/metrics"
)

// MemoryCommentRepository keeps comments in process memory.
// Used for local runs (STORE_DRIVER=memory) and end-to-end router tests.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments []domain.Comment
	now      func() time.Time
}

// NewMemoryCommentRepository creates an empty MemoryCommentRepository.
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{now: time.Now}
}

// ListByDateDesc returns a copy of all comments, newest first.
func (r *MemoryCommentRepository) ListByDateDesc(ctx context.Context) (comments []domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveStoreOperation("list", timer, err) }()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: list comments: %w", domain.ErrStorage, err)
	}

	r.mu.RLock()
	comments = make([]domain.Comment, len(r.comments))
	copy(comments, r.comments)
	r.mu.RUnlock()

	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].Date.Equal(comments[j].Date) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].Date.After(comments[j].Date)
	})

	return comments, nil
}

// Insert assigns an ID (and a date when unset) and appends the comment.
func (r *MemoryCommentRepository) Insert(ctx context.Context, c *domain.Comment) (stored *domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveStoreOperation("insert", timer, err) }()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: insert comment: %w", domain.ErrStorage, err)
	}

	out := *c
	out.ID = uuid.NewString()
	if out.Date.IsZero() {
		out.Date = r.now()
	}
	out.Date = out.Date.UTC()

	r.mu.Lock()
	r.comments = append(r.comments, out)
	r.mu.Unlock()

	return &out, nil
}

// Ping always succeeds.
func (r *MemoryCommentRepository) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored comments.
func (r *MemoryCommentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments)
}
