package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmorgan/tasktrack/internal/id"
	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/nmorgan/tasktrack/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list <all|todo|in-progress|done>",
	Short: "List tasks, optionally narrowed to one status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := model.ParseFilter(args[0])
		if err != nil {
			return err
		}
		tasks, err := st.List(filter)
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderTaskTable(tasks))
		return nil
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show all fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := id.Parse(args[0])
		if err != nil {
			return err
		}
		t, err := st.Get(taskID)
		if err != nil {
			return err
		}

		fields := []string{
			ui.RenderField("ID", strconv.Itoa(t.ID)),
			ui.RenderField("Status", ui.RenderStatus(t.Status)),
			ui.RenderField("Created", t.CreatedAt.Format("2006-01-02 15:04:05")),
			ui.RenderField("Updated", t.UpdatedAt.Format("2006-01-02 15:04:05")),
		}
		fmt.Print(ui.RenderTaskHeader(t.Title, fields))

		if t.Description != "" {
			rendered, err := ui.RenderDescription(t.Description)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(detailsCmd)
}
