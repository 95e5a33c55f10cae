// Shared helpers for todod client commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/todolist/pkg/client"
	"github.com/mesh-intelligence/todolist/pkg/types"
)

// newClient builds an API client for the configured server URL.
func newClient() *client.Client {
	return client.New(serverURL())
}

// parseIDArg parses a positional id argument.
func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// printTodo prints a single todo, as JSON when --json is set.
func printTodo(todo types.Todo) error {
	if flagJSON {
		output, err := json.MarshalIndent(todo, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal todo: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	done := " "
	if todo.Completed {
		done = "x"
	}
	fmt.Printf("%d [%s] %s\n", todo.ID, done, todo.Text)
	return nil
}

// printTodoTable prints todos in a human-readable table format.
func printTodoTable(todos []types.Todo) {
	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDONE\tTEXT\tCREATED")
	fmt.Fprintln(w, "--\t----\t----\t-------")
	for _, t := range todos {
		done := " "
		if t.Completed {
			done = "x"
		}
		// Truncate text if too long
		text := t.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n",
			t.ID,
			done,
			text,
			time.Unix(t.CreatedAt, 0).Format("2006-01-02"),
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d todo(s)\n", len(todos))
}
