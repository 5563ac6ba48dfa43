package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/pkg/types"
)

// NewSignupCommand registers a student for an activity.
func NewSignupCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signup ACTIVITY EMAIL",
		Short: "Register a student for an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !types.IsValidActivityName(args[0]) {
				return fmt.Errorf("invalid activity name %q", args[0])
			}
			if !types.IsValidEmail(args[1]) {
				return fmt.Errorf("invalid email %q", args[1])
			}

			application, err := buildApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer application.Close()

			mutErr := application.Controller.Signup(cmd.Context(), args[0], args[1])
			if err := printStatus(cmd.OutOrStdout(), application.Dispatcher.Status(), opts.Format); err != nil {
				return err
			}
			if mutErr != nil {
				cmd.SilenceErrors = true
				return mutErr
			}
			return nil
		},
	}
}
