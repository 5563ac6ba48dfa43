package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCommand clears the session. It succeeds even when the server is
// unreachable; the local session is always cleared.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer application.Close()

			application.Controller.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
