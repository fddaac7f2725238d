package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stockbook/core/money"
)

var (
	totalQuantity int
	totalRate     string
	totalTax      string
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Compute the tax-inclusive total for a quantity, rate and tax",
	Run: func(cmd *cobra.Command, args []string) {
		rate, err := decimal.NewFromString(totalRate)
		if err != nil {
			fmt.Printf("Invalid --rate: %v\n", err)
			os.Exit(1)
		}
		tax, err := decimal.NewFromString(totalTax)
		if err != nil {
			fmt.Printf("Invalid --tax: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(money.Display(money.Total(totalQuantity, rate, tax)))
	},
}

func init() {
	totalCmd.Flags().IntVar(&totalQuantity, "quantity", 1, "Quantity")
	totalCmd.Flags().StringVar(&totalRate, "rate", "", "Rate per unit (required)")
	totalCmd.MarkFlagRequired("rate")
	totalCmd.Flags().StringVar(&totalTax, "tax", "0", "Tax percentage, 0-100")
	rootCmd.AddCommand(totalCmd)
}
