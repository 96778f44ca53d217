package cmd

import (
	"fmt"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/nmorgan/tasktrack/internal/config"
	"github.com/nmorgan/tasktrack/internal/store"
)

var (
	version  = "dev"
	dataFile string
	st       *store.FileStore
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "tasktrack",
	Short:   "Track tasks in a local JSON file",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.Dir())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		st = store.New(cfg.DataFile(dataFile))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "data file path (default: config value, else tasks.json)")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: `tasktrack add "Buy milk"`},
					{Description: "Add a task with a description", Command: `tasktrack add "Buy milk" "Lactose-free"`},
				},
			},
			"update": {
				Examples: []mtp.Example{
					{Description: "Rename a task, keeping its description", Command: `tasktrack update 1 "Buy milk and bread"`},
					{Description: "Replace title and description", Command: `tasktrack update 1 "Buy milk" "From the local store"`},
				},
			},
			"mark": {
				Examples: []mtp.Example{
					{Description: "Start working on a task", Command: "tasktrack mark 1 in-progress"},
					{Description: "Finish a task", Command: "tasktrack mark 1 done"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with ID, title, and status",
				},
				Examples: []mtp.Example{
					{Description: "List every task", Command: "tasktrack list all"},
					{Description: "List unfinished work", Command: "tasktrack list in-progress"},
				},
			},
			"details": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "All fields of one task, description rendered as markdown",
				},
				Examples: []mtp.Example{
					{Description: "Inspect a task", Command: "tasktrack details 1"},
				},
			},
			"export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the exported markdown file (e.g. ./task-1.md)",
				},
				Examples: []mtp.Example{
					{Description: "Export a task for editing", Command: "tasktrack export 1"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Apply an edited export", Command: "tasktrack import task-1.md"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
