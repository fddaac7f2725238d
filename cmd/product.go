package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"stockbook/core/fault"
	"stockbook/core/money"
	entity "stockbook/model/entity"
	catalogRepo "stockbook/model/repository/catalog"
	"stockbook/service/asset"
)

var (
	prodBarcode     string
	prodSKU         string
	prodCategory    string
	prodSubcategory string
	prodName        string
	prodDescription string
	prodTax         string
	prodPrice       string
	prodUnit        string
	prodImage       string
)

var productAddCmd = &cobra.Command{
	Use:   "product:add",
	Short: "Create a product master record, optionally linking an image",
	Run: func(cmd *cobra.Command, args []string) {
		price, err := decimal.NewFromString(prodPrice)
		if err != nil {
			fmt.Printf("Invalid --price: %v\n", err)
			os.Exit(1)
		}
		tax, err := decimal.NewFromString(prodTax)
		if err != nil {
			fmt.Printf("Invalid --tax: %v\n", err)
			os.Exit(1)
		}

		db, cfg := openDB()
		repo := catalogRepo.NewCatalogRepository(db)
		if err := repo.Init(); err != nil {
			fmt.Printf("Catalog init failed: %v\n", err)
			os.Exit(1)
		}

		// Image copy before insert; a failed copy is a warning, the product
		// is still saved without an image path.
		var imagePath *string
		if prodImage != "" {
			linker := asset.NewLinker(cfg.AssetDir)
			rel, err := linker.LinkImage(prodImage, prodSKU)
			var assetErr *fault.AssetError
			if errors.As(err, &assetErr) {
				fmt.Printf("  [warn] image not saved: %v\n", assetErr)
			} else if rel != "" {
				imagePath = &rel
			}
		}

		p := &entity.ProductMaster{
			Barcode:          prodBarcode,
			SkuID:            prodSKU,
			Category:         prodCategory,
			Subcategory:      prodSubcategory,
			ProductImagePath: imagePath,
			ProductName:      prodName,
			Description:      prodDescription,
			Tax:              tax,
			Price:            price,
			DefaultUnit:      prodUnit,
		}
		if err := repo.InsertProduct(p); err != nil {
			var dup *fault.DuplicateKeyError
			if errors.As(err, &dup) {
				fmt.Printf("Rejected: %s is already taken\n", dup.Field)
			} else {
				fmt.Printf("Product not saved: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Printf("Product %q saved (id=%d)\n", p.ProductName, p.ID)
	},
}

var productListCmd = &cobra.Command{
	Use:   "product:list",
	Short: "List all product names in ascending order",
	Run: func(cmd *cobra.Command, args []string) {
		db, _ := openDB()
		repo := catalogRepo.NewCatalogRepository(db)
		if err := repo.Init(); err != nil {
			fmt.Printf("Catalog init failed: %v\n", err)
			os.Exit(1)
		}
		names, err := repo.ListProductNames()
		if err != nil {
			fmt.Printf("List failed: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("Catalog is empty")
			return
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

var productShowCmd = &cobra.Command{
	Use:   "product:show <product name>",
	Short: "Show one product master record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, _ := openDB()
		repo := catalogRepo.NewCatalogRepository(db)
		if err := repo.Init(); err != nil {
			fmt.Printf("Catalog init failed: %v\n", err)
			os.Exit(1)
		}
		p, err := repo.GetProduct(args[0])
		if err != nil {
			fmt.Printf("Lookup failed: %v\n", err)
			os.Exit(1)
		}
		if p == nil {
			fmt.Printf("No product named %q\n", args[0])
			os.Exit(1)
		}
		image := "-"
		if p.ProductImagePath != nil {
			image = *p.ProductImagePath
		}
		fmt.Printf(`Product:      %s
Barcode:      %s
SKU:          %s
Category:     %s / %s
Price:        %s
Tax:          %s %%
Default unit: %s
Image:        %s
Description:  %s
`, p.ProductName, p.Barcode, p.SkuID, p.Category, p.Subcategory,
			money.Display(p.Price), p.Tax.StringFixed(2), p.DefaultUnit, image, p.Description)
	},
}

func init() {
	productAddCmd.Flags().StringVar(&prodBarcode, "barcode", "", "Barcode (required)")
	productAddCmd.MarkFlagRequired("barcode")
	productAddCmd.Flags().StringVar(&prodSKU, "sku", "", "SKU ID (required)")
	productAddCmd.MarkFlagRequired("sku")
	productAddCmd.Flags().StringVar(&prodCategory, "category", "", "Category (required)")
	productAddCmd.MarkFlagRequired("category")
	productAddCmd.Flags().StringVar(&prodSubcategory, "subcategory", "", "Subcategory (required)")
	productAddCmd.MarkFlagRequired("subcategory")
	productAddCmd.Flags().StringVar(&prodName, "name", "", "Product name (required)")
	productAddCmd.MarkFlagRequired("name")
	productAddCmd.Flags().StringVar(&prodDescription, "description", "", "Description")
	productAddCmd.Flags().StringVar(&prodTax, "tax", "0", "Tax percentage, 0-100")
	productAddCmd.Flags().StringVar(&prodPrice, "price", "", "Unit price (required)")
	productAddCmd.MarkFlagRequired("price")
	productAddCmd.Flags().StringVar(&prodUnit, "unit", "pcs", "Default unit: pcs, kg, liters, boxes, packs")
	productAddCmd.Flags().StringVar(&prodImage, "image", "", "Path to a product image to copy")
	rootCmd.AddCommand(productAddCmd)
	rootCmd.AddCommand(productListCmd)
	rootCmd.AddCommand(productShowCmd)
}
