package base64_test

import (
	"rentdesk/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"png signature", "data:image/png;base64,iVBORw0KGgo=", "image/png"},
		{"parameters are kept", "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", "image/svg+xml;charset=utf-8"},
		{"missing scheme", "image/png;base64,iVBORw0KGgo=", ""},
		{"not base64 encoded", "data:image/png,iVBORw0KGgo=", ""},
		{"empty media type", "data:;base64,", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	data, contentType, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "Hello World", string(data))

	_, _, err = base64.Decode("SGVsbG8gV29ybGQ=")
	assert.ErrorIs(t, err, base64.ErrNotDataURL)

	_, _, err = base64.Decode("data:image/png;base64,%%%")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	encoded := base64.Encode("application/pdf", []byte("%PDF-1.4"))

	assert.Equal(t, "data:application/pdf;base64,JVBERi0xLjQ=", encoded)

	data, contentType, err := base64.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF-1.4", string(data))
}
