package cached

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akarpov/feedpulse/internal/adapters/secondary/repository/mocks"
	"github.com/akarpov/feedpulse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestRepository_FetchUsers_SecondCallHitsCache(t *testing.T) {
	ctx := context.Background()
	upstream := &mocks.MockRepository{}
	repo := NewRepository(upstream)

	users := []*domain.User{{ID: 1, Name: "Jane Doe", Username: "jane.doe"}}
	upstream.On("FetchUsers", ctx).Return(users, nil).Once()

	first, err := repo.FetchUsers(ctx)
	require.NoError(t, err)

	second, err := repo.FetchUsers(ctx)
	require.NoError(t, err)

	assert.Equal(t, users, first)
	assert.Same(t, first[0], second[0], "cached call must return the stored value")
	upstream.AssertExpectations(t)
}

func TestRepository_FetchUsers_TTLExpiry(t *testing.T) {
	tests := []struct {
		name            string
		advance         time.Duration
		expectedFetches int
	}{
		{
			name:            "just inside the window",
			advance:         60*time.Second - time.Millisecond,
			expectedFetches: 1,
		},
		{
			name:            "just past the window",
			advance:         60*time.Second + time.Millisecond,
			expectedFetches: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			clock := newFakeClock()
			upstream := &mocks.MockRepository{}
			repo := NewRepository(upstream, WithClock(clock.Now))

			users := []*domain.User{{ID: 1, Name: "Jane Doe"}}
			upstream.On("FetchUsers", ctx).Return(users, nil).Times(tt.expectedFetches)

			_, err := repo.FetchUsers(ctx)
			require.NoError(t, err)

			clock.Advance(tt.advance)

			_, err = repo.FetchUsers(ctx)
			require.NoError(t, err)

			upstream.AssertExpectations(t)
		})
	}
}

func TestRepository_FetchUserPosts_PerUserSlots(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	upstream := &mocks.MockRepository{}
	repo := NewRepository(upstream, WithClock(clock.Now))

	postsOne := []*domain.Post{{ID: 10, UserID: 1}}
	postsTwo := []*domain.Post{{ID: 20, UserID: 2}}

	upstream.On("FetchUserPosts", ctx, 1).Return(postsOne, nil).Once()
	upstream.On("FetchUserPosts", ctx, 2).Return(postsTwo, nil).Twice()

	_, err := repo.FetchUserPosts(ctx, 1)
	require.NoError(t, err)

	// User 2's slot gets its own timestamp, fifteen seconds later.
	clock.Advance(15 * time.Second)
	_, err = repo.FetchUserPosts(ctx, 2)
	require.NoError(t, err)

	// Twenty more seconds: user 1's slot is stale (35s > 30s) but user 2's
	// is still fresh (20s < 30s).
	clock.Advance(20 * time.Second)

	upstream.On("FetchUserPosts", ctx, 1).Return(postsOne, nil).Once()
	_, err = repo.FetchUserPosts(ctx, 1)
	require.NoError(t, err)

	got, err := repo.FetchUserPosts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, postsTwo, got)

	// User 2 refreshes only after its own window passes.
	clock.Advance(15 * time.Second)
	_, err = repo.FetchUserPosts(ctx, 2)
	require.NoError(t, err)

	upstream.AssertExpectations(t)
}

func TestRepository_FetchPostComments_FailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	upstream := &mocks.MockRepository{}
	repo := NewRepository(upstream, WithClock(clock.Now))

	commentsSix := []*domain.Comment{{ID: 1, PostID: 6}}

	upstream.On("FetchPostComments", ctx, 6).Return(commentsSix, nil).Once()
	upstream.On("FetchPostComments", ctx, 5).Return(nil, errors.New("boom"))

	_, err := repo.FetchPostComments(ctx, 6)
	require.NoError(t, err)

	_, err = repo.FetchPostComments(ctx, 5)
	require.Error(t, err)

	// Post 6's entry is still valid and still serves from cache.
	got, err := repo.FetchPostComments(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, commentsSix, got)

	// A later retry for post 5 can still succeed; the failure cached nothing.
	upstream.AssertExpectations(t)
}

func TestRepository_FetchUserPosts_ErrorIsPropagated(t *testing.T) {
	ctx := context.Background()
	upstream := &mocks.MockRepository{}
	repo := NewRepository(upstream)

	fetchErr := &domain.FetchError{Resource: "posts", ID: 7, Err: errors.New("boom")}
	upstream.On("FetchUserPosts", ctx, 7).Return(nil, fetchErr)

	posts, err := repo.FetchUserPosts(ctx, 7)

	require.Error(t, err)
	assert.Nil(t, posts)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestRepository_FetchUsers_ConcurrentCallsCollapse(t *testing.T) {
	ctx := context.Background()
	upstream := &mocks.MockRepository{}
	repo := NewRepository(upstream)

	users := []*domain.User{{ID: 1, Name: "Jane Doe"}}

	release := make(chan struct{})
	upstream.On("FetchUsers", mock.Anything).
		Run(func(_ mock.Arguments) { <-release }).
		Return(users, nil).
		Once()

	const callers = 10
	var wg sync.WaitGroup
	results := make([][]*domain.User, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = repo.FetchUsers(ctx)
		}()
	}

	// Let every caller reach the in-flight request before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, users, results[i])
	}
	upstream.AssertExpectations(t)
}
