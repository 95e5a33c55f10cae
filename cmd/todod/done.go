// Done command marks a todo as completed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo as completed",
	Long: `Done sets the completed flag on a todo regardless of its current
value. Use toggle to flip the flag instead.

Example:
  todod done 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	completed := true
	todo, err := newClient().Update(cmd.Context(), id, types.UpdatePatch{Completed: &completed})
	if err != nil {
		return fmt.Errorf("complete todo %d: %w", id, err)
	}
	return printTodo(todo)
}
