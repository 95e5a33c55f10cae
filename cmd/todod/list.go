// List command fetches all todos from the server.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all todos, newest first",
	Long: `List fetches every todo from the server and displays it.

Example:
  todod list
  todod list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	todos, err := newClient().List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(todos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal todos: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printTodoTable(todos)
	return nil
}
