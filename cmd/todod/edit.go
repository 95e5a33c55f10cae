// Edit command replaces the text of an existing todo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace the text of a todo",
	Long: `Edit updates the text of an existing todo and prints the updated row.

Example:
  todod edit 3 "Buy oat milk"`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	text := args[1]
	todo, err := newClient().Update(cmd.Context(), id, types.UpdatePatch{Text: &text})
	if err != nil {
		return fmt.Errorf("update todo %d: %w", id, err)
	}
	return printTodo(todo)
}
