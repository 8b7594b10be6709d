package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/akarpov/feedpulse/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

const topUsersLimit = 5

// Repository defines the interface for upstream feed reads (port).
type Repository interface {
	FetchUsers(ctx context.Context) ([]*domain.User, error)
	FetchUserPosts(ctx context.Context, userID int) ([]*domain.Post, error)
	FetchPostComments(ctx context.Context, postID int) ([]*domain.Comment, error)
}

// App represents the core application with all aggregation logic.
type App struct {
	repo Repository
}

// NewApp creates a new application instance.
func NewApp(repo Repository) (*App, error) {
	return &App{repo: repo}, nil
}

// FetchUsers returns all users.
func (a *App) FetchUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := a.repo.FetchUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

// FetchUserPosts returns the posts authored by one user.
func (a *App) FetchUserPosts(ctx context.Context, userID int) ([]*domain.Post, error) {
	posts, err := a.repo.FetchUserPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts for user %d: %w", userID, err)
	}

	return posts, nil
}

// FetchPostComments returns the comments on one post.
func (a *App) FetchPostComments(ctx context.Context, postID int) ([]*domain.Comment, error) {
	comments, err := a.repo.FetchPostComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for post %d: %w", postID, err)
	}

	return comments, nil
}

// FetchAllPosts returns the posts of every user, concatenated in user
// enumeration order. Per-user fetches run concurrently; completion order
// never leaks into the result. Any single failure fails the whole call.
func (a *App) FetchAllPosts(ctx context.Context) ([]*domain.Post, error) {
	users, err := a.repo.FetchUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	postsByUser := make([][]*domain.Post, len(users))

	for i, user := range users {
		g.Go(func() error {
			posts, err := a.repo.FetchUserPosts(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to fetch posts for user %d: %w", user.ID, err)
			}
			postsByUser[i] = posts

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch all posts: %w", err)
	}

	var allPosts []*domain.Post
	for _, posts := range postsByUser {
		allPosts = append(allPosts, posts...)
	}

	return allPosts, nil
}

// FetchAllCommentCounts returns the number of comments on each of the given
// posts. Per-post fetches run concurrently with a fail-fast join.
func (a *App) FetchAllCommentCounts(ctx context.Context, postIDs []int) (map[int]int, error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make(map[int]int, len(postIDs))
	var mu sync.Mutex

	for _, postID := range postIDs {
		g.Go(func() error {
			comments, err := a.repo.FetchPostComments(ctx, postID)
			if err != nil {
				return fmt.Errorf("failed to fetch comments for post %d: %w", postID, err)
			}
			mu.Lock()
			counts[postID] = len(comments)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch comment counts: %w", err)
	}

	return counts, nil
}

// TopUsers returns the five users with the most posts, ordered by post count
// descending. Users with equal counts keep their upstream relative order.
func (a *App) TopUsers(ctx context.Context) ([]*domain.UserActivity, error) {
	users, posts, err := a.fetchUsersAndAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	postCounts := make(map[int]int, len(users))
	for _, post := range posts {
		postCounts[post.UserID]++
	}

	activities := make([]*domain.UserActivity, 0, len(users))
	for _, user := range users {
		activities = append(activities, &domain.UserActivity{
			User:      user,
			PostCount: postCounts[user.ID],
		})
	}

	// Stable: ties keep user enumeration order.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].PostCount > activities[j].PostCount
	})

	if len(activities) > topUsersLimit {
		activities = activities[:topUsersLimit]
	}

	return activities, nil
}

// TrendingPosts returns every post whose comment count equals the maximum
// comment count across all posts. With no posts at all the result is empty.
func (a *App) TrendingPosts(ctx context.Context) ([]*domain.TrendingPost, error) {
	users, posts, err := a.fetchUsersAndAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return []*domain.TrendingPost{}, nil
	}

	postIDs := make([]int, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	counts, err := a.FetchAllCommentCounts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	maxComments := 0
	for _, count := range counts {
		if count > maxComments {
			maxComments = count
		}
	}

	usersByID := make(map[int]*domain.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	trending := make([]*domain.TrendingPost, 0)
	for _, post := range posts {
		if counts[post.ID] != maxComments {
			continue
		}

		trending = append(trending, &domain.TrendingPost{
			Post:         post,
			Author:       usersByID[post.UserID],
			CommentCount: maxComments,
		})
	}

	return trending, nil
}

// fetchUsersAndAllPosts runs the users fetch and the all-posts aggregate
// concurrently and waits for both.
func (a *App) fetchUsersAndAllPosts(ctx context.Context) ([]*domain.User, []*domain.Post, error) {
	g, ctx := errgroup.WithContext(ctx)

	var users []*domain.User
	var posts []*domain.Post

	g.Go(func() error {
		var err error
		users, err = a.repo.FetchUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch users: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		posts, err = a.FetchAllPosts(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return users, posts, nil
}
