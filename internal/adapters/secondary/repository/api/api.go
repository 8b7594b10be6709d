// Package api implements the app.Repository interface against the upstream
// feed API, a read-only JSON service with three endpoints: the user list,
// a user's posts and a post's comments.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/akarpov/feedpulse/internal/core/domain"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	resourceUsers    = "users"
	resourcePosts    = "posts"
	resourceComments = "comments"
)

// Repository implements the app.Repository interface for the feed API.
type Repository struct {
	client  *retryablehttp.Client
	baseURL string
}

// NewRepository creates a new feed API repository instance.
func NewRepository(client *retryablehttp.Client, baseURL string) *Repository {
	return &Repository{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchUsers fetches the user list. The upstream shape is a JSON object
// mapping user id to display name; usernames are derived from the names.
func (r *Repository) FetchUsers(ctx context.Context) ([]*domain.User, error) {
	var raw map[string]string
	if err := r.getJSON(ctx, "/users", &raw); err != nil {
		return nil, &domain.FetchError{Resource: resourceUsers, Err: err}
	}

	users := make([]*domain.User, 0, len(raw))
	for idStr, name := range raw {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, &domain.FetchError{
				Resource: resourceUsers,
				Err:      fmt.Errorf("malformed user id %q: %w", idStr, err),
			}
		}

		users = append(users, &domain.User{
			ID:       id,
			Name:     name,
			Username: UsernameFromName(name),
		})
	}

	// JSON object keys carry no order; enumerate users by id so downstream
	// ordering guarantees have a stable base.
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

// rawPost is the upstream post record. The title is not provided upstream
// and the body travels under "content".
type rawPost struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

// FetchUserPosts fetches the posts authored by one user.
func (r *Repository) FetchUserPosts(ctx context.Context, userID int) ([]*domain.Post, error) {
	var raw []rawPost
	if err := r.getJSON(ctx, fmt.Sprintf("/users/%d/posts", userID), &raw); err != nil {
		return nil, &domain.FetchError{Resource: resourcePosts, ID: userID, Err: err}
	}

	posts := make([]*domain.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, &domain.Post{
			ID:     p.ID,
			UserID: userID,
			Title:  fmt.Sprintf("Post #%d", p.ID),
			Body:   p.Content,
		})
	}

	return posts, nil
}

type rawComment struct {
	ID   int    `json:"id"`
	Body string `json:"body"`
}

// FetchPostComments fetches the comments on one post.
func (r *Repository) FetchPostComments(ctx context.Context, postID int) ([]*domain.Comment, error) {
	var raw []rawComment
	if err := r.getJSON(ctx, fmt.Sprintf("/posts/%d/comments", postID), &raw); err != nil {
		return nil, &domain.FetchError{Resource: resourceComments, ID: postID, Err: err}
	}

	comments := make([]*domain.Comment, 0, len(raw))
	for _, c := range raw {
		comments = append(comments, &domain.Comment{
			ID:     c.ID,
			PostID: postID,
			Body:   c.Body,
		})
	}

	return comments, nil
}

// getJSON issues a GET against path and decodes the response body into out.
// Non-2xx statuses and malformed bodies are errors.
func (r *Repository) getJSON(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// UsernameFromName derives a username from a display name: lower-cased, with
// each whitespace run replaced by a single dot.
func UsernameFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), ".")
}
