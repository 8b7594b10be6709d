package commands

import (
	"context"
	"fmt"

	"github.com/akarpov/feedpulse/internal/core/app"
	"github.com/akarpov/feedpulse/internal/core/domain"
	"github.com/akarpov/feedpulse/internal/format/ascii"
	"github.com/akarpov/feedpulse/internal/log"
	"github.com/spf13/cobra"
)

func Posts(appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Everything related to posts",
	}

	cmd.AddCommand(
		PostsTrending(appInstance, formatter),
		PostsAll(appInstance, formatter),
	)

	return cmd
}

func PostsTrending(appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show the posts with the most comments",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showTrendingPosts(appInstance, formatter)
		},
	}
}

func PostsAll(appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every post across all users",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showAllPosts(appInstance, formatter)
		},
	}
}

func showTrendingPosts(appInstance *app.App, formatter *ascii.Formatter) error {
	ctx := context.Background()

	var trending []*domain.TrendingPost
	err := log.WithSpinner("Finding trending posts...", func() error {
		var err error
		trending, err = appInstance.TrendingPosts(ctx)
		if err != nil {
			return fmt.Errorf("failed to find trending posts: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to find trending posts: %w", err)
	}

	formatted, err := formatter.FormatTrendingPosts(trending)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(formatted)

	return nil
}

func showAllPosts(appInstance *app.App, formatter *ascii.Formatter) error {
	ctx := context.Background()

	var posts []*domain.Post
	err := log.WithSpinner("Collecting posts from all users...", func() error {
		var err error
		posts, err = appInstance.FetchAllPosts(ctx)
		if err != nil {
			return fmt.Errorf("failed to collect posts: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to collect posts: %w", err)
	}

	formatted, err := formatter.FormatAllPosts(posts)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(formatted)

	return nil
}
