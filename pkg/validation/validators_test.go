package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"trimmed_min=2"`
	Email string `json:"email" validate:"contact_email"`
	Notes string `json:"notes" validate:"trimmed_min=3"`
}

func TestIsEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last+tag@sub.example.co", "  padded@example.org  "}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}

	invalid := []string{
		"", "not-an-email", "a@b", "@example.com", "a@.com", "a@b.", "a b@example.com", "a@-b.com",
		"a..b@example.com", ".alice@example.com", "alice.@example.com", "a@1.2",
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}

func TestTrimmedMinCountsRunesAfterTrim(t *testing.T) {
	v := New()

	err := v.Struct(sample{Name: "  A  ", Email: "a@b.com", Notes: "abc"})
	violations, ok := Violations(err)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "trimmed_min", violations[0].Tag)
	assert.Equal(t, "Name must be at least 2 characters", violations[0].Message)

	assert.NoError(t, v.Struct(sample{Name: "Żó", Email: "a@b.com", Notes: "abc"}))
}

func TestViolationsCollectsEveryField(t *testing.T) {
	v := New()

	err := v.Struct(sample{})
	violations, ok := Violations(err)
	require.True(t, ok)

	fields := map[string]string{}
	for _, violation := range violations {
		fields[violation.Field] = violation.Message
	}
	assert.Equal(t, map[string]string{
		"name":  "Name must be at least 2 characters",
		"email": "Please enter a valid email address",
		"notes": "notes must be at least 3 characters",
	}, fields)
}

func TestViolationsRejectsOtherErrors(t *testing.T) {
	_, ok := Violations(errors.New("boom"))
	assert.False(t, ok)
}
