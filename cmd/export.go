package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nmorgan/tasktrack/internal/id"
	"github.com/nmorgan/tasktrack/internal/store"
	"github.com/nmorgan/tasktrack/internal/taskfile"
)

var exportCmd = &cobra.Command{
	Use:   "export <id> [dir]",
	Short: "Write a task to a markdown file for editing",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := id.Parse(args[0])
		if err != nil {
			return err
		}
		t, err := st.Get(taskID)
		if err != nil {
			return err
		}

		dir := "."
		if len(args) == 2 {
			dir = args[1]
		}
		data, err := taskfile.Marshal(t)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("task-%d.md", t.ID))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println(path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Apply an edited markdown export back to the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := taskfile.ReadFile(args[0])
		if err != nil {
			return err
		}
		// The store keeps ownership of created_at; only title,
		// description, and status come from the file.
		upd := store.TaskUpdate{
			Title:       &t.Title,
			Description: &t.Description,
			Status:      &t.Status,
		}
		applied, err := st.Update(t.ID, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Imported task #%d\n", applied.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
