package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"rollcall/pkg/types"
)

// printView renders a ViewModel as text cards or JSON.
func printView(w io.Writer, vm types.ViewModel, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(vm, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if vm.Mode == types.ModeAuthenticated {
		fmt.Fprintf(w, "Logged in as %s\n\n", vm.Identity)
	} else if vm.ShowLoginNotice {
		fmt.Fprintf(w, "Log in as a teacher to register students.\n\n")
	}

	if !vm.RosterLoaded {
		fmt.Fprintln(w, "Failed to load activities. Please try again later.")
		return nil
	}

	for i, card := range vm.Activities {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", card.Name)
		fmt.Fprintf(w, "  %s\n", card.Description)
		fmt.Fprintf(w, "  Schedule: %s\n", card.Schedule)
		fmt.Fprintf(w, "  Availability: %d spots left\n", card.SpotsLeft)
		if card.NoParticipants {
			fmt.Fprintln(w, "  No participants yet")
			continue
		}
		fmt.Fprintln(w, "  Participants:")
		for _, row := range card.Participants {
			fmt.Fprintf(w, "    - %s\n", row.Email)
		}
	}

	if vm.Status.Visible {
		fmt.Fprintf(w, "\n[%s] %s\n", vm.Status.Kind, vm.Status.Text)
	}
	return nil
}

// printStatus renders the outcome of a mutation.
func printStatus(w io.Writer, status types.StatusMessage, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintf(w, "[%s] %s\n", status.Kind, status.Text)
	return nil
}
