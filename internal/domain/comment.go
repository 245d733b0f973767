package domain

import "time"

// Comment represents a stored comment.
type Comment struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// CreateCommentInput is the client-supplied part of a new comment.
type CreateCommentInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

// DatePrecision is the resolution comment dates are stored and rendered at.
const DatePrecision = time.Millisecond

// NewComment builds an unsaved comment from the input, dated at now rounded
// up to DatePrecision so the rendered date is never before now.
// The ID is left empty for the store to assign.
func NewComment(in CreateCommentInput, now time.Time) *Comment {
	return &Comment{
		Name:    in.Name,
		Email:   in.Email,
		Comment: in.Comment,
		Date:    ceilTime(now.UTC(), DatePrecision),
	}
}

func ceilTime(t time.Time, d time.Duration) time.Time {
	if r := t.Truncate(d); !r.Equal(t) {
		return r.Add(d)
	}
	return t
}
