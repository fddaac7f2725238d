package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stockbook/core/money"
	entity "stockbook/model/entity"
	catalogRepo "stockbook/model/repository/catalog"
	ledgerRepo "stockbook/model/repository/ledger"
)

var (
	txProduct      string
	txCounterparty string
	txQuantity     int
	txUnit         string
	txRate         string
	txTax          string
)

func openLedger() *ledgerRepo.LedgerRepository {
	db, cfg := openDB()
	repo := ledgerRepo.NewLedgerRepository(db)
	if err := repo.Init(); err != nil {
		fmt.Printf("Ledger init failed: %v\n", err)
		os.Exit(1)
	}
	if cfg.RequireKnownProduct {
		catalog := catalogRepo.NewCatalogRepository(db)
		if err := catalog.Init(); err != nil {
			fmt.Printf("Catalog init failed: %v\n", err)
			os.Exit(1)
		}
		repo.RequireKnownProduct(catalog)
	}
	return repo
}

func txAmounts() (decimal.Decimal, decimal.Decimal) {
	rate, err := decimal.NewFromString(txRate)
	if err != nil {
		fmt.Printf("Invalid --rate: %v\n", err)
		os.Exit(1)
	}
	tax, err := decimal.NewFromString(txTax)
	if err != nil {
		fmt.Printf("Invalid --tax: %v\n", err)
		os.Exit(1)
	}
	return rate, tax
}

var receivingAddCmd = &cobra.Command{
	Use:   "receiving:add",
	Short: "Append a goods receiving entry",
	Run: func(cmd *cobra.Command, args []string) {
		rate, tax := txAmounts()
		repo := openLedger()
		e := &entity.GoodsReceiving{
			ProductName:  txProduct,
			SupplierName: txCounterparty,
			Quantity:     txQuantity,
			Unit:         txUnit,
			RatePerUnit:  rate,
			Tax:          tax,
		}
		if err := repo.InsertGoodsReceiving(e); err != nil {
			fmt.Printf("Goods receiving not saved: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Goods receiving saved, total %s\n", money.Display(e.TotalRate))
	},
}

var salesAddCmd = &cobra.Command{
	Use:   "sales:add",
	Short: "Append a sales entry",
	Run: func(cmd *cobra.Command, args []string) {
		rate, tax := txAmounts()
		repo := openLedger()
		e := &entity.Sale{
			ProductName:  txProduct,
			CustomerName: txCounterparty,
			Quantity:     txQuantity,
			Unit:         txUnit,
			RatePerUnit:  rate,
			Tax:          tax,
		}
		if err := repo.InsertSales(e); err != nil {
			fmt.Printf("Sale not saved: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sale saved, total %s\n", money.Display(e.TotalRate))
	},
}

func txFlags(c *cobra.Command, counterparty string) {
	c.Flags().StringVar(&txProduct, "product", "", "Product name (required)")
	c.MarkFlagRequired("product")
	c.Flags().StringVar(&txCounterparty, counterparty, "", counterparty+" name (required)")
	c.MarkFlagRequired(counterparty)
	c.Flags().IntVar(&txQuantity, "quantity", 1, "Quantity, at least 1")
	c.Flags().StringVar(&txUnit, "unit", "pcs", "Unit: pcs, kg, liters, boxes, packs")
	c.Flags().StringVar(&txRate, "rate", "", "Rate per unit (required)")
	c.MarkFlagRequired("rate")
	c.Flags().StringVar(&txTax, "tax", "0", "Tax percentage, 0-100")
}

func init() {
	txFlags(receivingAddCmd, "supplier")
	txFlags(salesAddCmd, "customer")
	rootCmd.AddCommand(receivingAddCmd)
	rootCmd.AddCommand(salesAddCmd)
}
