package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage the purchase ledger",
}

var (
	matPrice  float64
	matVendor string
	matImage  string
	matSearch string
)

var materialAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Record a purchased material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.AddMaterial(sitemaster.MaterialInput{
			Name:     args[0],
			Price:    matPrice,
			Location: matVendor,
			Image:    matImage,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added material %d: %s (%s)\n", created.ID, created.Name, money(created.Price))
		return nil
	},
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ledger, oldest purchase first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		materials := store.ListMaterials(matSearch)
		if structured() {
			return renderStructured(materials)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tVENDOR")
		for _, m := range materials {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Name, money(m.Price), m.Location)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Total: %s\n", money(store.MaterialsTotal(matSearch)))
		return nil
	},
}

var materialEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a ledger entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		var patch types.MaterialPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			patch.Name = &name
		}
		if cmd.Flags().Changed("price") {
			patch.Price = &matPrice
		}
		if cmd.Flags().Changed("vendor") {
			vendor, _ := cmd.Flags().GetString("vendor")
			patch.Location = &vendor
		}
		if cmd.Flags().Changed("image") {
			image, _ := cmd.Flags().GetString("image")
			patch.Image = &image
		}
		updated, err := store.UpdateMaterial(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated material %d: %s\n", updated.ID, updated.Name)
		return nil
	},
}

var materialRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a ledger entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.RemoveMaterial(id); err != nil {
			return err
		}
		fmt.Printf("Removed material %d\n", id)
		return nil
	},
}

func init() {
	materialAddCmd.Flags().Float64Var(&matPrice, "price", 0, "Purchase price")
	materialAddCmd.Flags().StringVar(&matVendor, "vendor", "", "Vendor name")
	materialAddCmd.Flags().StringVar(&matImage, "image", "", "Pre-encoded receipt image payload")

	materialListCmd.Flags().StringVar(&matSearch, "search", "", "Filter by name or vendor substring")

	materialEditCmd.Flags().String("name", "", "New name")
	materialEditCmd.Flags().Float64Var(&matPrice, "price", 0, "New price")
	materialEditCmd.Flags().String("vendor", "", "New vendor")
	materialEditCmd.Flags().String("image", "", "New image payload")

	materialCmd.AddCommand(materialAddCmd, materialListCmd, materialEditCmd, materialRemoveCmd)
}
