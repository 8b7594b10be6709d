package commands

import (
	"fmt"
	"strconv"

	"github.com/akarpov/feedpulse/internal/permalink"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

func Open(linker *permalink.Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "open <post-id>",
		Short: "Open a post in browser",
		Long:  `Open the given post's web permalink in your default browser.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return openPost(linker, args[0])
		},
	}
}

func openPost(linker *permalink.Builder, arg string) error {
	postID, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %w", arg, err)
	}

	url, err := linker.MakePostURL(postID)
	if err != nil {
		return fmt.Errorf("failed to build post URL: %w", err)
	}

	if err := open.Run(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
