// Toggle command flips the completed flag of a todo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip the completed flag of a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	todo, err := newClient().Toggle(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("toggle todo %d: %w", id, err)
	}
	return printTodo(todo)
}
