package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCreateCommentInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want CreateCommentInput
	}{
		{
			name: "strings",
			body: `{"name":"Ada","email":"ada@example.com","comment":"hi"}`,
			want: CreateCommentInput{Name: "Ada", Email: "ada@example.com", Comment: "hi"},
		},
		{
			name: "missing and null fields are empty",
			body: `{"name":null}`,
			want: CreateCommentInput{},
		},
		{
			name: "numbers and booleans keep their text",
			body: `{"name":42,"email":"a@b.co","comment":true}`,
			want: CreateCommentInput{Name: "42", Email: "a@b.co", Comment: "true"},
		},
		{
			name: "unknown fields are ignored",
			body: `{"name":"Ada","id":"x","date":"2020-01-01"}`,
			want: CreateCommentInput{Name: "Ada"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got CreateCommentInput
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCreateCommentInput_UnmarshalJSONTypeErrorNamesField(t *testing.T) {
	tests := []struct {
		body  string
		field string
	}{
		{`{"name":{"first":"Ada"}}`, "name"},
		{`{"name":"Ada","email":["a@b.co"]}`, "email"},
		{`{"comment":{}}`, "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var in CreateCommentInput
			err := json.Unmarshal([]byte(tt.body), &in)

			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("error = %v, want *json.UnmarshalTypeError", err)
			}
			if typeErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", typeErr.Field, tt.field)
			}
		})
	}
}

func TestCreateCommentInput_UnmarshalJSONRejectsNonObject(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `12`} {
		var in CreateCommentInput
		if err := json.Unmarshal([]byte(body), &in); err == nil {
			t.Errorf("Unmarshal(%s) expected error", body)
		}
	}
}
