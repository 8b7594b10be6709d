package cli

import (
	"github.com/akarpov/feedpulse/internal/adapters/primary/cli/commands"
	"github.com/akarpov/feedpulse/internal/core/app"
	ascii "github.com/akarpov/feedpulse/internal/format/ascii"
	"github.com/akarpov/feedpulse/internal/permalink"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Command creates and returns the root CLI command.
func Command(i do.Injector) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Long: `A CLI tool for exploring feed activity.`,
	}

	appInstance := do.MustInvoke[*app.App](i)
	linker := do.MustInvoke[*permalink.Builder](i)
	formatter := do.MustInvoke[*ascii.Formatter](i)

	cmd.AddCommand(
		commands.Users(appInstance, formatter),
		commands.Posts(appInstance, formatter),
		commands.Open(linker),
	)

	return cmd, nil
}
