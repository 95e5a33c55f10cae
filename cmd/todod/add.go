// Add command creates a new todo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Create a new todo",
	Long: `Add creates a todo with the given text. The server assigns the id
and timestamps; the created row is printed back.

Example:
  todod add "Buy milk"
  todod add "Review PR" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	todo, err := newClient().Create(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return printTodo(todo)
}
