package ascii

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/akarpov/feedpulse/internal/core/domain"
)

const bodyPreviewMaxLen = 60

var (
	//go:embed top_users.tmpl
	topUsersTemplate string

	//go:embed trending_posts.tmpl
	trendingPostsTemplate string

	//go:embed all_posts.tmpl
	allPostsTemplate string
)

// TopUsersData holds data for the top users template.
type TopUsersData struct {
	Users     []*domain.UserActivity
	Timestamp time.Time
}

// TrendingPostsData holds data for the trending posts template.
type TrendingPostsData struct {
	Posts     []*domain.TrendingPost
	Timestamp time.Time
}

// AllPostsData holds data for the all posts template.
type AllPostsData struct {
	Posts     []*domain.Post
	Timestamp time.Time
}

// Formatter renders aggregation results as ascii tables.
type Formatter struct {
	topUsers      *template.Template
	trendingPosts *template.Template
	allPosts      *template.Template
}

// NewFormatter creates a new Formatter instance.
func NewFormatter() *Formatter {
	funcs := template.FuncMap{
		"preview": bodyPreview,
		"addOne":  func(i int) int { return i + 1 },
	}

	return &Formatter{
		topUsers:      template.Must(template.New("topUsers").Funcs(funcs).Parse(topUsersTemplate)),
		trendingPosts: template.Must(template.New("trendingPosts").Funcs(funcs).Parse(trendingPostsTemplate)),
		allPosts:      template.Must(template.New("allPosts").Funcs(funcs).Parse(allPostsTemplate)),
	}
}

// FormatTopUsers formats the most active users ranking.
func (f *Formatter) FormatTopUsers(users []*domain.UserActivity) (string, error) {
	return f.render(f.topUsers, TopUsersData{
		Users:     users,
		Timestamp: time.Now(),
	})
}

// FormatTrendingPosts formats the trending posts view.
func (f *Formatter) FormatTrendingPosts(posts []*domain.TrendingPost) (string, error) {
	return f.render(f.trendingPosts, TrendingPostsData{
		Posts:     posts,
		Timestamp: time.Now(),
	})
}

// FormatAllPosts formats the flat post list.
func (f *Formatter) FormatAllPosts(posts []*domain.Post) (string, error) {
	return f.render(f.allPosts, AllPostsData{
		Posts:     posts,
		Timestamp: time.Now(),
	})
}

func (f *Formatter) render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func bodyPreview(body string) string {
	if len(body) > bodyPreviewMaxLen {
		return body[:bodyPreviewMaxLen-3] + "..."
	}

	return body
}
