package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
)

var (
	cmpProduct string
	cmpNameA   string
	cmpPriceA  float64
	cmpQtyA    float64
	cmpUnitA   string
	cmpNameB   string
	cmpPriceB  float64
	cmpQtyB    float64
	cmpUnitB   string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two offers by cost per unit",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		result, err := store.Compare(cmpProduct,
			sitemaster.Offer{Store: cmpNameA, Price: cmpPriceA, Qty: cmpQtyA, Unit: cmpUnitA},
			sitemaster.Offer{Store: cmpNameB, Price: cmpPriceB, Qty: cmpQtyB, Unit: cmpUnitB},
		)
		if err != nil {
			return err
		}
		if structured() {
			return renderStructured(result)
		}
		fmt.Printf("A: %s per unit\n", money(result.UnitCostA))
		fmt.Printf("B: %s per unit\n", money(result.UnitCostB))
		if result.Tie {
			fmt.Printf("Both offers cost the same per unit; %s kept as nominal winner\n", result.WinnerName)
		} else {
			fmt.Printf("%s is cheaper, saving %.2f%%\n", result.WinnerName, result.SavingsPercent)
		}
		fmt.Println("Run 'sitemaster compare commit' to add the winner to the ledger")
		return nil
	},
}

var compareCommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Promote the last comparison winner into the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.CommitComparison()
		if err != nil {
			return err
		}
		fmt.Printf("Added material %d: %s from %s (%s)\n",
			created.ID, created.Name, created.Location, money(created.Price))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&cmpProduct, "name", "", "Product being compared")
	compareCmd.Flags().StringVar(&cmpNameA, "store-a", "", "First store name")
	compareCmd.Flags().Float64Var(&cmpPriceA, "price-a", 0, "First offer price")
	compareCmd.Flags().Float64Var(&cmpQtyA, "qty-a", 0, "First offer quantity")
	compareCmd.Flags().StringVar(&cmpUnitA, "unit-a", "", "First offer unit")
	compareCmd.Flags().StringVar(&cmpNameB, "store-b", "", "Second store name")
	compareCmd.Flags().Float64Var(&cmpPriceB, "price-b", 0, "Second offer price")
	compareCmd.Flags().Float64Var(&cmpQtyB, "qty-b", 0, "Second offer quantity")
	compareCmd.Flags().StringVar(&cmpUnitB, "unit-b", "", "Second offer unit")

	compareCmd.AddCommand(compareCommitCmd)
}
