package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Fence-build estimation catalog and templates",
}

var estimateListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the estimation reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := sitemaster.Catalog()
		if structured() {
			return renderStructured(catalog)
		}
		w := newTable()
		fmt.Fprintln(w, "#\tITEM\tQUANTITY\tPRICE RANGE\tUNIT\tAVG")
		for i, item := range catalog {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				i, item.Name, item.Quantity, item.PriceRange, item.Unit, money(item.AveragePrice))
		}
		return w.Flush()
	},
}

var estimateAddCmd = &cobra.Command{
	Use:   "add <row>",
	Short: "Add a catalog row to the ledger at its average price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid catalog row %q", args[0])
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.MaterializeEstimate(index)
		if err != nil {
			return err
		}
		fmt.Printf("Added material %d: %s (%s)\n", created.ID, created.Name, money(created.Price))
		return nil
	},
}

var estimateTemplateCmd = &cobra.Command{
	Use:   "template <kind>",
	Short: "Expand a standard project template into workflow steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		count, err := store.ApplyStandardTemplate(sitemaster.TemplateKind(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("Added %d workflow steps from the %s template\n", count, args[0])
		return nil
	},
}

func init() {
	estimateCmd.AddCommand(estimateListCmd, estimateAddCmd, estimateTemplateCmd)
}
