package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"comments-api/internal/domain"
	"comments-api/internal/middleware"
	"comments-api/internal/service"
	"comments-api/internal/validator"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ErrorsResponse is the body of a 400 response.
type ErrorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// toCommentResponse converts a domain.Comment to a CommentResponse.
func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Comment: c.Comment,
		Date:    c.Date.UTC().Format(TimeFormat),
	}
}

// ListComments handles GET /api/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to list comments", err)
		return
	}

	response := make([]CommentResponse, len(comments))
	for i := range comments {
		response[i] = toCommentResponse(&comments[i])
	}

	c.JSON(http.StatusOK, response)
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	in, err := decodeCommentInput(c)
	if err != nil {
		middleware.Logger(c).Info("Rejected malformed comment body",
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorsResponse{Errors: []domain.FieldError{bodyError(err)}})
		return
	}

	stored, err := h.commentService.CreateComment(c.Request.Context(), in)

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.Logger(c).Info("Rejected invalid comment",
			slog.Any("fields", ve.Fields()))
		c.JSON(http.StatusBadRequest, ErrorsResponse{Errors: ve.Errors})
	case err != nil:
		serverError(c, "Failed to create comment", err)
	default:
		middleware.Logger(c).Info("Comment created",
			slog.String("comment_id", stored.ID))
		c.JSON(http.StatusOK, toCommentResponse(stored))
	}
}

// decodeCommentInput reads the whole body as one JSON object. An empty body
// is validated as if all fields were missing; trailing data is rejected.
func decodeCommentInput(c *gin.Context) (domain.CreateCommentInput, error) {
	var in domain.CreateCommentInput

	body, err := c.GetRawData()
	if err != nil {
		return in, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}

	err = json.Unmarshal(body, &in)
	return in, err
}

// bodyError names the offending field for wrongly typed values.
func bodyError(err error) domain.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg := validator.MessageFor(typeErr.Field); msg != "" {
			return domain.FieldError{Field: typeErr.Field, Message: msg}
		}
	}
	return domain.FieldError{Field: "body", Message: InvalidBodyMessage}
}

// serverError logs err in full and answers with a bare 500.
func serverError(c *gin.Context, msg string, err error) {
	middleware.Logger(c).Error(msg, slog.String("error", err.Error()))
	c.String(http.StatusInternalServerError, ServerErrorMessage)
}

// Recovered is the gin recovery handler: it logs the panic and answers
// with the same plain-text 500 as any other server fault.
func Recovered(c *gin.Context, recovered any) {
	middleware.Logger(c).Error("Recovered from panic",
		slog.Any("panic", recovered))
	c.String(http.StatusInternalServerError, ServerErrorMessage)
	c.Abort()
}
