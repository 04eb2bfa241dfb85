package middleware_test

import (
	"testing"

	"zap-shift/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	token, err := middleware.ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "abc.def.ghi"},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"extra parts", "Bearer abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := middleware.ExtractBearerToken(tt.header)
			assert.Error(t, err)
		})
	}
}
