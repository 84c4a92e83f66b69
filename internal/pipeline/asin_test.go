package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractASIN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare uppercase", "B012345678", "B012345678"},
		{"bare lowercase", "b012345678", "B012345678"},
		{"surrounding quotes", `"b012345678"`, "B012345678"},
		{"single quotes", "'B0ABCDEF12'", "B0ABCDEF12"},
		{"padded whitespace", "  B012345678  ", "B012345678"},
		{"product url", "https://www.amazon.com/dp/B0ABCDEFGH", "B0ABCDEFGH"},
		{"product url with query", "https://amazon.com/dp/b0abcdefgh?th=1", "B0ABCDEFGH"},
		{"embedded in text", "see B012345678 for details", "B012345678"},
		{"eleven chars", "B0123456789", ""},
		{"nine chars", "B01234567", ""},
		{"starts with digit", "0123456789", ""},
		{"empty", "", ""},
		{"quotes only", `""`, ""},
		{"plain word", "widget", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractASIN(tt.input))
		})
	}
}

func TestIsASIN(t *testing.T) {
	assert.True(t, IsASIN("B012345678"))
	assert.True(t, IsASIN("XABCDEFGH0"))
	assert.False(t, IsASIN("b012345678"), "lowercase is not normalized form")
	assert.False(t, IsASIN("0123456789"), "must start with a letter")
	assert.False(t, IsASIN("B01234567"), "too short")
	assert.False(t, IsASIN("B0123456789"), "too long")
}
