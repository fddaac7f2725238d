package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockbook/cron"
)

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the background scheduler (orphan asset sweep)",
	Run: func(cmd *cobra.Command, args []string) {
		db, cfg := openDB()
		c, err := cron.Start(cfg, db)
		if err != nil {
			fmt.Printf("Scheduler failed to start: %v\n", err)
			os.Exit(1)
		}
		defer c.Stop()
		fmt.Println("Scheduler started. Press Ctrl+C to exit.")
		select {} // Block forever
	},
}

func init() {
	rootCmd.AddCommand(cronStartCmd)
}
