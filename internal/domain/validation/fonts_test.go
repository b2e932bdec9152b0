package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFontFamily(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "Noto Sans", 0},
		{"empty", "   ", 1},
		{"newline", "Noto\nSans", 1},
		{"too long", strings.Repeat("a", maxFamilyLength+1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateFontFamily("family", tt.value), tt.want)
		})
	}
}

func TestValidateCustomProperty(t *testing.T) {
	assert.Empty(t, ValidateCustomProperty("p", "--b3-font-family"))
	assert.Len(t, ValidateCustomProperty("p", "b3-font-family"), 1)
	assert.Len(t, ValidateCustomProperty("p", "--"), 1)
	assert.Len(t, ValidateCustomProperty("p", "--bad name"), 1)
	assert.Len(t, ValidateCustomProperty("p", "--x;y"), 1)
}
