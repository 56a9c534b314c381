package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage the vendor directory",
}

var (
	vendorLocation string
	vendorPhone    string
	vendorNote     string
)

var vendorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.AddStoreContact(sitemaster.StoreContactInput{
			Name:     args[0],
			Location: vendorLocation,
			Phone:    vendorPhone,
			Note:     vendorNote,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added vendor %d: %s\n", created.ID, created.Name)
		return nil
	},
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendors",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		contacts := store.ListStoreContacts()
		if structured() {
			return renderStructured(contacts)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tLOCATION\tPHONE\tNOTE")
		for _, c := range contacts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Location, c.Phone, c.Note)
		}
		return w.Flush()
	},
}

var vendorEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a vendor",
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

		var patch types.StoreContactPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			patch.Name = &name
		}
		if cmd.Flags().Changed("location") {
			patch.Location = &vendorLocation
		}
		if cmd.Flags().Changed("phone") {
			patch.Phone = &vendorPhone
		}
		if cmd.Flags().Changed("note") {
			patch.Note = &vendorNote
		}
		updated, err := store.UpdateStoreContact(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated vendor %d: %s\n", updated.ID, updated.Name)
		return nil
	},
}

var vendorRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a vendor",
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
		if err := store.RemoveStoreContact(id); err != nil {
			return err
		}
		fmt.Printf("Removed vendor %d\n", id)
		return nil
	},
}

func init() {
	vendorAddCmd.Flags().StringVar(&vendorLocation, "location", "", "Address or map link")
	vendorAddCmd.Flags().StringVar(&vendorPhone, "phone", "", "Phone number")
	vendorAddCmd.Flags().StringVar(&vendorNote, "note", "", "Free-text note")

	vendorEditCmd.Flags().String("name", "", "New name")
	vendorEditCmd.Flags().StringVar(&vendorLocation, "location", "", "New location")
	vendorEditCmd.Flags().StringVar(&vendorPhone, "phone", "", "New phone")
	vendorEditCmd.Flags().StringVar(&vendorNote, "note", "", "New note")

	vendorCmd.AddCommand(vendorAddCmd, vendorListCmd, vendorEditCmd, vendorRemoveCmd)
}
