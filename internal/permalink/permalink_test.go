package permalink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_MakePostURL(t *testing.T) {
	builder, err := NewBuilder("https://feed.example.com/posts/{{.PostID}}")
	require.NoError(t, err)

	url, err := builder.MakePostURL(42)

	require.NoError(t, err)
	assert.Equal(t, "https://feed.example.com/posts/42", url)
}

func TestBuilder_NoTemplate(t *testing.T) {
	builder, err := NewBuilder("")
	require.NoError(t, err)

	_, err = builder.MakePostURL(42)

	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestNewBuilder_InvalidTemplate(t *testing.T) {
	_, err := NewBuilder("https://feed.example.com/posts/{{.PostID")

	require.Error(t, err)
}
