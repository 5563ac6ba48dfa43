package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand fetches and displays the activity roster.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all activities and their participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer application.Close()

			// The view itself reports a fetch failure; the command only
			// fails hard when there is nothing at all to show.
			refreshErr := application.Controller.Reload(cmd.Context())
			vm := application.Controller.View()
			if err := printView(cmd.OutOrStdout(), vm, opts.Format); err != nil {
				return err
			}
			if refreshErr != nil && !vm.RosterLoaded {
				return refreshErr
			}
			return nil
		},
	}
}
