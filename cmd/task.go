package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmorgan/tasktrack/internal/id"
	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/nmorgan/tasktrack/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <title> [description]",
	Short: "Add a new task",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := ""
		if len(args) == 2 {
			description = args[1]
		}
		t, err := st.Add(args[0], description)
		if err != nil {
			return err
		}
		fmt.Printf("Added task #%d\n", t.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <new_title> [new_description]",
	Short: "Replace a task's title and optionally its description",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := id.Parse(args[0])
		if err != nil {
			return err
		}
		// Omitted description is preserved, not cleared.
		upd := store.TaskUpdate{Title: &args[1]}
		if len(args) == 3 {
			upd.Description = &args[2]
		}
		t, err := st.Update(taskID, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task #%d\n", t.ID)
		return nil
	},
}

var markCmd = &cobra.Command{
	Use:   "mark <id> <todo|in-progress|done>",
	Short: "Set a task's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := id.Parse(args[0])
		if err != nil {
			return err
		}
		status, err := model.ParseStatus(args[1])
		if err != nil {
			return err
		}
		t, err := st.Update(taskID, store.TaskUpdate{Status: &status})
		if err != nil {
			return err
		}
		fmt.Printf("Marked task #%d as %s\n", t.ID, t.Status)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := id.Parse(args[0])
		if err != nil {
			return err
		}
		if err := st.Delete(taskID); err != nil {
			return err
		}
		fmt.Printf("Deleted task #%d\n", taskID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(deleteCmd)
}
