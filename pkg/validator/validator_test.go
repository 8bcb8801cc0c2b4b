package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required,league"`
	Status   string `json:"status" binding:"omitempty,sample_status"`
	Age      int    `json:"age" binding:"omitempty,min=1,max=100"`
}

func TestParseErrorUsesJSONNames(t *testing.T) {
	RegisterEnum("sample_status", func(s string) bool { return s == "ok" })

	err := binding.Validator.ValidateStruct(&sample{Category: "nope", Status: "bad", Age: 101})
	fields := ParseError(err)

	assert.Equal(t, "title is required", fields["title"])
	assert.Equal(t, "category must be a known league category", fields["category"])
	assert.Contains(t, fields, "status")
	assert.Equal(t, "age must be at most 100", fields["age"])
}

func TestParseErrorAcceptsValid(t *testing.T) {
	RegisterEnum("sample_status", func(s string) bool { return s == "ok" })

	err := binding.Validator.ValidateStruct(&sample{Title: "x", Category: "უმაღლესი", Status: "ok", Age: 30})
	assert.NoError(t, err)
	assert.Empty(t, ParseError(err))
}

func TestParseErrorPlainError(t *testing.T) {
	fields := ParseError(errors.New("unexpected EOF"))
	assert.Equal(t, "unexpected EOF", fields["error"])
}

type contact struct {
	Email *string `json:"email" binding:"omitempty,optional_email"`
	Site  *string `json:"site" binding:"omitempty,optional_url"`
}

func TestOptionalTagsAllowClearing(t *testing.T) {
	Setup()
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		in      contact
		invalid []string
	}{
		{"absent", contact{}, nil},
		{"cleared", contact{Email: str(""), Site: str("  ")}, nil},
		{"valid", contact{Email: str("coach@lelo.ge"), Site: str("https://lelo.ge/logo.png")}, nil},
		{"invalid", contact{Email: str("nope"), Site: str("not a url")}, []string{"email", "site"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ParseError(binding.Validator.ValidateStruct(&tt.in))
			assert.Len(t, fields, len(tt.invalid))
			for _, f := range tt.invalid {
				assert.Contains(t, fields, f)
			}
		})
	}
	assert.Equal(t, "email must be a valid email address",
		ParseError(binding.Validator.ValidateStruct(&contact{Email: str("x")}))["email"])
}
