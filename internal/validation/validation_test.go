package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Title   string  `json:"title" validate:"required,min=3"`
	Email   string  `json:"email" validate:"required,email"`
	Content *string `json:"content" validate:"omitempty,min=10"`
}

func TestCheck_ValidPayload(t *testing.T) {
	t.Parallel()

	errs := Check(samplePayload{Title: "abc", Email: "a@b.co"})
	assert.Nil(t, errs)
}

func TestCheck_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	errs := Check(samplePayload{Title: "ab", Email: "not-an-email"})
	require.NotNil(t, errs)

	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "email")
	assert.Equal(t, []string{"must be at least 3 characters"}, errs["title"])
	assert.Equal(t, []string{"must be a valid email address"}, errs["email"])
}

func TestCheck_RequiredFields(t *testing.T) {
	t.Parallel()

	errs := Check(samplePayload{})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"is required"}, errs["title"])
}

func TestCheck_OptionalPointerFields(t *testing.T) {
	t.Parallel()

	// Absent optional fields are fine.
	errs := Check(samplePayload{Title: "abc", Email: "a@b.co", Content: nil})
	assert.Nil(t, errs)

	// A supplied but too-short value is not.
	short := "too short"
	errs = Check(samplePayload{Title: "abc", Email: "a@b.co", Content: &short})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "content")
}
