package cmd

import (
	"log"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stockbook/config"
)

var rootCmd = &cobra.Command{
	Use:   "stockbook",
	Short: "Inventory records for a small retail/warehouse operation",
	Long:  "Goods receiving and sales logs, a product catalog and operator accounts over an embedded store.",
}

func Execute() {
	figure.NewFigure("stockbook", "", true).Print()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// openDB loads config and connects to the backing store. A connection failure
// at startup is fatal; nothing can proceed without the store.
func openDB() (*gorm.DB, *config.Config) {
	config.LoadAppConfig()
	cfg := config.AppConfig
	db, err := config.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}
	return db, cfg
}
