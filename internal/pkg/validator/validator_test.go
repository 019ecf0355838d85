package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-09-01")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("01-09-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-09-10T08:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-09-10T08:30:00+09:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-09-10 08:30:00")
	assert.False(t, ok)
}

func TestHasURLScheme(t *testing.T) {
	assert.True(t, HasURLScheme("https://x.com/a.pdf", "https"))
	assert.False(t, HasURLScheme("http://x.com/a.pdf", "https"))
	assert.False(t, HasURLScheme("httpsx.com/a.pdf", "https"))
	assert.False(t, HasURLScheme("ftp://x.com/a.pdf", "https"))
}

func TestHasAllowedExtension(t *testing.T) {
	allowed := []string{".pdf", ".jpg", ".jpeg", ".png"}

	assert.True(t, HasAllowedExtension("https://x.com/a.pdf", allowed))
	assert.True(t, HasAllowedExtension("https://x.com/a.PDF", allowed))
	assert.True(t, HasAllowedExtension("https://x.com/photo.jpeg", allowed))
	assert.False(t, HasAllowedExtension("https://x.com/a.exe", allowed))
	assert.False(t, HasAllowedExtension("https://x.com/a.pdf.exe", allowed))
	assert.False(t, HasAllowedExtension("https://x.com/a", allowed))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "Must be a valid date (YYYY-MM-DD)"},
		{Field: "name", Message: "Name is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "Name is required", m["name"])
	assert.Contains(t, errs.Error(), "start_date")
}
