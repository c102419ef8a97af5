package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklog/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasklog",
		Short: "TaskLog API Server",
		Long:  `TaskLog is a personal task management service with time tracking and aggregate statistics.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
