package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var rentalCmd = &cobra.Command{
	Use:   "rental",
	Short: "Track rented equipment and due dates",
}

var (
	rentProvider string
	rentStart    string
	rentReturn   string
	rentPrice    float64
	rentDeposit  float64
)

var rentalAddCmd = &cobra.Command{
	Use:   "add <item>",
	Short: "Register rented equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.AddRental(sitemaster.RentalInput{
			Item:       args[0],
			Provider:   rentProvider,
			StartDate:  rentStart,
			ReturnDate: rentReturn,
			Price:      rentPrice,
			Deposit:    rentDeposit,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added rental %d: %s, due back %s\n", created.ID, created.Item, created.ReturnDate)
		return nil
	},
}

var rentalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rentals with urgency",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		rentals := store.ListRentals()
		if structured() {
			return renderStructured(rentals)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tITEM\tPROVIDER\tDUE\tRATE\tDEPOSIT\tSTATUS")
		for _, r := range rentals {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s/day\t%s\t%s\n",
				r.ID, r.Item, r.Provider, r.ReturnDate, money(r.Price), money(r.Deposit), r.Status)
		}
		return w.Flush()
	},
}

var rentalEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a rental",
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

		var patch types.RentalPatch
		if cmd.Flags().Changed("item") {
			item, _ := cmd.Flags().GetString("item")
			patch.Item = &item
		}
		if cmd.Flags().Changed("provider") {
			patch.Provider = &rentProvider
		}
		if cmd.Flags().Changed("start") {
			patch.StartDate = &rentStart
		}
		if cmd.Flags().Changed("return") {
			patch.ReturnDate = &rentReturn
		}
		if cmd.Flags().Changed("price") {
			patch.Price = &rentPrice
		}
		if cmd.Flags().Changed("deposit") {
			patch.Deposit = &rentDeposit
		}
		updated, err := store.UpdateRental(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated rental %d\n", updated.ID)
		return nil
	},
}

var rentalRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a rental",
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
		if err := store.RemoveRental(id); err != nil {
			return err
		}
		fmt.Printf("Removed rental %d\n", id)
		return nil
	},
}

var rentalToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a rental between active and returned",
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
		updated, err := store.ToggleRentalStatus(id)
		if err != nil {
			return err
		}
		fmt.Printf("Rental %d is now %s\n", updated.ID, updated.Status)
		return nil
	},
}

var rentalAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show rentals overdue or due within two days",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		alerts := store.HomeAlerts()
		if structured() {
			return renderStructured(alerts)
		}
		if len(alerts) == 0 {
			fmt.Println("No rentals need attention")
			return nil
		}
		w := newTable()
		fmt.Fprintln(w, "ITEM\tDUE\tURGENCY")
		for _, a := range alerts {
			detail := string(a.Urgency)
			switch a.Urgency {
			case sitemaster.UrgencyOverdue:
				detail = fmt.Sprintf("overdue by %d day(s)", a.Days)
			case sitemaster.UrgencyDueSoon:
				detail = fmt.Sprintf("due in %d day(s)", a.Days)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Rental.Item, a.Rental.ReturnDate, detail)
		}
		return w.Flush()
	},
}

func init() {
	rentalAddCmd.Flags().StringVar(&rentProvider, "provider", "", "Rental provider")
	rentalAddCmd.Flags().StringVar(&rentStart, "start", "", "Start date (YYYY-MM-DD)")
	rentalAddCmd.Flags().StringVar(&rentReturn, "return", "", "Return due date (YYYY-MM-DD)")
	rentalAddCmd.Flags().Float64Var(&rentPrice, "price", 0, "Per-day rate")
	rentalAddCmd.Flags().Float64Var(&rentDeposit, "deposit", 0, "Deposit paid")

	rentalEditCmd.Flags().String("item", "", "New item name")
	rentalEditCmd.Flags().StringVar(&rentProvider, "provider", "", "New provider")
	rentalEditCmd.Flags().StringVar(&rentStart, "start", "", "New start date")
	rentalEditCmd.Flags().StringVar(&rentReturn, "return", "", "New return date")
	rentalEditCmd.Flags().Float64Var(&rentPrice, "price", 0, "New per-day rate")
	rentalEditCmd.Flags().Float64Var(&rentDeposit, "deposit", 0, "New deposit")

	rentalCmd.AddCommand(rentalAddCmd, rentalListCmd, rentalEditCmd,
		rentalRemoveCmd, rentalToggleCmd, rentalAlertsCmd)
}
