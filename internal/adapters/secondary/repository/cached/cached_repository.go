// Package cached decorates a Repository with read-through TTL caching.
package cached

import (
	"context"
	"strconv"
	"time"

	"github.com/akarpov/feedpulse/internal/adapters/secondary/cache"
	"github.com/akarpov/feedpulse/internal/core/app"
	"github.com/akarpov/feedpulse/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Fixed cache policy: the user list refreshes every minute, per-user posts
// and per-post comments every thirty seconds.
const (
	usersTTL    = 60 * time.Second
	postsTTL    = 30 * time.Second
	commentsTTL = 30 * time.Second

	// The user list is a single collection, cached under one key.
	usersKey = 0
)

// Repository wraps a Repository with per-key TTL caching. A valid cache
// entry is served without touching upstream; a miss or stale entry triggers
// one upstream fetch whose result fully replaces the entry. Failed fetches
// leave the cache untouched, so a still-valid prior entry keeps serving.
type Repository struct {
	repo     app.Repository
	users    *cache.Store[int, []*domain.User]
	posts    *cache.Store[int, []*domain.Post]
	comments *cache.Store[int, []*domain.Comment]

	// flight collapses concurrent fetches of the same key into one
	// upstream call shared by every waiter.
	flight singleflight.Group
}

// Option configures the cached repository.
type Option func(*Repository)

// WithClock overrides the time source of every store, for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.users = cache.New(cache.WithClock[int, []*domain.User](now))
		r.posts = cache.New(cache.WithClock[int, []*domain.Post](now))
		r.comments = cache.New(cache.WithClock[int, []*domain.Comment](now))
	}
}

// NewRepository creates a new cached repository instance.
func NewRepository(repo app.Repository, opts ...Option) *Repository {
	r := &Repository{
		repo:     repo,
		users:    cache.New[int, []*domain.User](),
		posts:    cache.New[int, []*domain.Post](),
		comments: cache.New[int, []*domain.Comment](),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FetchUsers returns the cached user list when fresh, fetching it upstream
// otherwise.
func (r *Repository) FetchUsers(ctx context.Context) ([]*domain.User, error) {
	if users, ok := r.users.Get(usersKey); ok {
		return users, nil
	}

	v, err, _ := r.flight.Do("users", func() (any, error) {
		users, err := r.repo.FetchUsers(ctx)
		if err != nil {
			return nil, err
		}
		r.users.Put(usersKey, users, usersTTL)

		return users, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.User), nil
}

// FetchUserPosts returns the cached posts of one user when fresh, fetching
// them upstream otherwise. Other users' entries are never affected.
func (r *Repository) FetchUserPosts(ctx context.Context, userID int) ([]*domain.Post, error) {
	if posts, ok := r.posts.Get(userID); ok {
		return posts, nil
	}

	v, err, _ := r.flight.Do(flightKey("posts", userID), func() (any, error) {
		posts, err := r.repo.FetchUserPosts(ctx, userID)
		if err != nil {
			return nil, err
		}
		r.posts.Put(userID, posts, postsTTL)

		return posts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Post), nil
}

// FetchPostComments returns the cached comments of one post when fresh,
// fetching them upstream otherwise.
func (r *Repository) FetchPostComments(ctx context.Context, postID int) ([]*domain.Comment, error) {
	if comments, ok := r.comments.Get(postID); ok {
		return comments, nil
	}

	v, err, _ := r.flight.Do(flightKey("comments", postID), func() (any, error) {
		comments, err := r.repo.FetchPostComments(ctx, postID)
		if err != nil {
			return nil, err
		}
		r.comments.Put(postID, comments, commentsTTL)

		return comments, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Comment), nil
}

func flightKey(resource string, id int) string {
	return resource + "/" + strconv.Itoa(id)
}
