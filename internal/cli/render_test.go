package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
)

func TestRenderFavoritesEscaping(t *testing.T) {
	entries := []sidebar.Favorite{
		{Name: `My "Docs"`, Path: "/Users/me/Docs"},
		{Name: "Four    Spaces", Path: "/tmp/a,b"},
	}

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatTxt, "My \"Docs\"\t/Users/me/Docs\nFour    Spaces\t/tmp/a,b\n"},
		{FormatQuotedTxt, "\"My \"\"Docs\"\"\"\t\"/Users/me/Docs\"\n\"Four    Spaces\"\t\"/tmp/a,b\"\n"},
		{FormatCSV, "\"My \"\"Docs\"\"\",\"/Users/me/Docs\"\n\"Four    Spaces\",\"/tmp/a,b\"\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderFavorites(&buf, entries, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderFavoritesEmpty(t *testing.T) {
	for _, format := range []OutputFormat{FormatTxt, FormatQuotedTxt, FormatCSV} {
		var buf bytes.Buffer
		require.NoError(t, RenderFavorites(&buf, nil, format))
		assert.Empty(t, buf.String(), format)
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range OutputFormats {
		got, err := ParseOutputFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseOutputFormat("TXT")
	assert.Error(t, err)
}
