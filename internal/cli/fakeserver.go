package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"rollcall/internal/fakeserver"
)

// NewFakeServerCommand serves the in-memory stand-in backend for local
// development: `rollcall --server http://localhost:8000 list` against it.
func NewFakeServerCommand(opts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Run an in-memory activity service for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr:         addr,
				Handler:      fakeserver.New().Handler(),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fake activity service listening on %s (teacher / mergington)\n", addr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8000", "listen address")
	return cmd
}
