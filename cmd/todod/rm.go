// Rm command deletes a todo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	if err := newClient().Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}

	if !flagJSON {
		fmt.Printf("Deleted todo %d\n", id)
	}
	return nil
}
