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

func Users(appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Everything related to users",
	}

	cmd.AddCommand(
		UsersTop(appInstance, formatter),
	)

	return cmd
}

func UsersTop(appInstance *app.App, formatter *ascii.Formatter) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the most active users by post count",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showTopUsers(appInstance, formatter)
		},
	}
}

func showTopUsers(appInstance *app.App, formatter *ascii.Formatter) error {
	ctx := context.Background()

	var activities []*domain.UserActivity
	err := log.WithSpinner("Ranking the most active users...", func() error {
		var err error
		activities, err = appInstance.TopUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to rank users: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to rank users: %w", err)
	}

	formatted, err := formatter.FormatTopUsers(activities)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(formatted)

	return nil
}
