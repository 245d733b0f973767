package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// UnmarshalJSON decodes the three input fields. Numbers and booleans are
// kept as their literal text; objects and arrays are a type error naming
// the field. Missing and null fields decode as "".
func (in *CreateCommentInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    json.RawMessage `json:"name"`
		Email   json.RawMessage `json:"email"`
		Comment json.RawMessage `json:"comment"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out CreateCommentInput
	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"name", raw.Name, &out.Name},
		{"email", raw.Email, &out.Email},
		{"comment", raw.Comment, &out.Comment},
	}
	for _, f := range fields {
		s, err := scalarString(f.raw)
		if err != nil {
			return &json.UnmarshalTypeError{
				Value:  err.Error(),
				Type:   reflect.TypeOf(""),
				Struct: "CreateCommentInput",
				Field:  f.name,
			}
		}
		*f.dst = s
	}

	*in = out
	return nil
}

type kindError string

func (e kindError) Error() string { return string(e) }

func scalarString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{':
		return "", kindError("object")
	case '[':
		return "", kindError("array")
	case 't', 'f':
		b, err := strconv.ParseBool(string(raw))
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		return string(raw), nil
	}
}
