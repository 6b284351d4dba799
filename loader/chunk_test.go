package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpandURLTemplate(t *testing.T) {
	source := expandURLTemplate(
		"https://x.test/{mediaId}?t={startSeconds}", "0_abc123",
		int(125700*time.Millisecond/time.Second))
	assert.Equal(t, "https://x.test/0_abc123?t=125", source)
}

func TestValidateURLTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{"valid", "https://x.test/{mediaId}?t={startSeconds}", false},
		{"empty", "", true},
		{"missing media id", "https://x.test/v?t={startSeconds}", true},
		{"missing start seconds", "https://x.test/{mediaId}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURLTemplate(tt.template)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				assert.ErrorAs(t, err, &cfgErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "00:00:05", FormatTimestamp(5*time.Second))
	assert.Equal(t, "00:02:05", FormatTimestamp(125700*time.Millisecond))
	assert.Equal(t, "01:01:01", FormatTimestamp(3661*time.Second))
	assert.Equal(t, "00:00:00", FormatTimestamp(0))
}

func TestChunkStartSeconds(t *testing.T) {
	c := Chunk{Start: 125700 * time.Millisecond}
	assert.Equal(t, 125, c.StartSeconds())
}
