// Tui command runs the interactive terminal client.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todolist/internal/tui"
	"github.com/mesh-intelligence/todolist/pkg/todostore"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit todos interactively",
	Long: `Tui opens an interactive list backed by the server. Toggling is
optimistic: the checkbox flips immediately and reverts if the server
rejects the change.

Keys: enter toggle, a add, d delete, r refresh, q quit.`,
	Args: cobra.NoArgs,
	RunE: runTui,
}

func runTui(cmd *cobra.Command, args []string) error {
	store := todostore.New(newClient())
	return tui.Run(cmd.Context(), store)
}
