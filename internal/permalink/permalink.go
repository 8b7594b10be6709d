package permalink

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

// ErrNoTemplate is returned when no post URL template is configured.
var ErrNoTemplate = errors.New("no post URL template configured")

// Builder renders web permalinks for posts from a configured URL template.
// The template receives the post id as {{.PostID}}.
type Builder struct {
	urlTemplate *template.Template
}

// NewBuilder creates a Builder from the given template string. An empty
// template is allowed; MakePostURL then fails with ErrNoTemplate.
func NewBuilder(urlTemplate string) (*Builder, error) {
	b := &Builder{}

	if urlTemplate != "" {
		tmpl, err := template.New("postURL").Parse(urlTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse post URL template: %w", err)
		}
		b.urlTemplate = tmpl
	}

	return b, nil
}

// MakePostURL renders the permalink for one post.
func (b *Builder) MakePostURL(postID int) (string, error) {
	if b.urlTemplate == nil {
		return "", ErrNoTemplate
	}

	data := struct {
		PostID int
	}{
		PostID: postID,
	}

	var buf bytes.Buffer
	if err := b.urlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute post URL template: %w", err)
	}

	return buf.String(), nil
}
