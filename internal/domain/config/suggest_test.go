package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"bottom", "top", "left", "right", "auto"}
	tests := []struct {
		value string
		want  string
	}{
		{"botom", "bottom"},
		{"RIGHT", "right"},
		{"lef", "left"},
		{"", ""},
		{"diagonal", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Suggest(tt.value, candidates))
		})
	}
}
