package log

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// WithSpinner executes fn while showing a spinner with the given message.
// The spinner goes to the terminal, never into the command's output.
func WithSpinner(message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], spinnerInterval)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		return fmt.Errorf("failed to color spinner: %w", err)
	}

	s.FinalMSG = message + " \033[32m[done]\033[0m\n"
	s.Start()
	defer s.Stop()

	return fn()
}
