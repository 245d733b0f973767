package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"comments-api/internal/domain"
)

const (
	MsgNameRequired    = "Name is required"
	MsgEmailInvalid    = "Valid email is required"
	MsgCommentRequired = "Comment is required"
)

// fieldOrder is the order in which field errors are reported.
var fieldOrder = []string{"name", "email", "comment"}

var fieldMessages = map[string]string{
	"name":    MsgNameRequired,
	"email":   MsgEmailInvalid,
	"comment": MsgCommentRequired,
}

// MessageFor returns the error message reported for an invalid field,
// or "" when the field is not validated.
func MessageFor(field string) string {
	return fieldMessages[field]
}

// Validator provides validation methods for incoming comments.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateComment checks every field of the input and returns a
// *domain.ValidationError listing all failures, or nil.
func (v *Validator) ValidateComment(in *domain.CreateCommentInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error(MsgNameRequired),
		),
		validation.Field(&in.Email,
			validation.Required.Error(MsgEmailInvalid),
			is.EmailFormat.Error(MsgEmailInvalid),
		),
		validation.Field(&in.Comment,
			validation.Required.Error(MsgCommentRequired),
		),
	)
	if err != nil {
		return &domain.ValidationError{Errors: ConvertValidationErrors(err)}
	}
	return nil
}

// ConvertValidationErrors converts ozzo validation errors to domain FieldErrors.
func ConvertValidationErrors(err error) []domain.FieldError {
	ve, ok := err.(validation.Errors)
	if !ok {
		if err == nil {
			return nil
		}
		return []domain.FieldError{{Field: "body", Message: err.Error()}}
	}

	errors := make([]domain.FieldError, 0, len(ve))
	for _, field := range fieldOrder {
		if fieldErr, ok := ve[field]; ok && fieldErr != nil {
			errors = append(errors, domain.FieldError{
				Field:   field,
				Message: fieldErr.Error(),
			})
		}
	}
	// Anything outside the known fields goes last.
	for field, fieldErr := range ve {
		if fieldErr == nil || isKnownField(field) {
			continue
		}
		errors = append(errors, domain.FieldError{Field: field, Message: fieldErr.Error()})
	}

	return errors
}

func isKnownField(field string) bool {
	for _, f := range fieldOrder {
		if f == field {
			return true
		}
	}
	return false
}
