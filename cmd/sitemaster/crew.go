package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var crewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Attendance and wage accrual",
}

var (
	crewRole string
	crewType string
	crewWage float64
)

var crewAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a crew member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workerType, err := types.ParseWorkerType(crewType)
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.AddWorker(sitemaster.WorkerInput{
			Name: args[0],
			Role: crewRole,
			Type: workerType,
			Wage: crewWage,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added worker %d: %s (%s, %s/day)\n",
			created.ID, created.Name, created.Role, money(created.Wage))
		return nil
	},
}

var crewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the crew with balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		workers := store.ListWorkers()
		if structured() {
			return renderStructured(workers)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tROLE\tWAGE\tIN\tACCUMULATED\tADVANCE\tNET")
		for _, worker := range workers {
			present := "-"
			if worker.IsPresent {
				present = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				worker.ID, worker.Name, worker.Role, money(worker.Wage), present,
				money(worker.AccumulatedWage), money(worker.AdvancePayment), money(worker.NetPayable()))
		}
		return w.Flush()
	},
}

var crewEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a crew member, including balances",
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

		var patch types.WorkerPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			patch.Name = &name
		}
		if cmd.Flags().Changed("role") {
			patch.Role = &crewRole
		}
		if cmd.Flags().Changed("type") {
			workerType, err := types.ParseWorkerType(crewType)
			if err != nil {
				return err
			}
			patch.Type = &workerType
		}
		if cmd.Flags().Changed("wage") {
			patch.Wage = &crewWage
		}
		if cmd.Flags().Changed("accumulated") {
			accumulated, _ := cmd.Flags().GetFloat64("accumulated")
			patch.AccumulatedWage = &accumulated
		}
		if cmd.Flags().Changed("advance") {
			advance, _ := cmd.Flags().GetFloat64("advance")
			patch.AdvancePayment = &advance
		}
		updated, err := store.UpdateWorker(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated worker %d: net payable %s\n", updated.ID, money(updated.NetPayable()))
		return nil
	},
}

var crewRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a crew member",
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
		if err := store.RemoveWorker(id); err != nil {
			return err
		}
		fmt.Printf("Removed worker %d\n", id)
		return nil
	},
}

var crewToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip today's attendance mark",
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
		updated, err := store.ToggleWorkerPresence(id)
		if err != nil {
			return err
		}
		state := "out"
		if updated.IsPresent {
			state = "in"
		}
		fmt.Printf("%s is now %s\n", updated.Name, state)
		return nil
	},
}

var crewReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show today's payout estimate for the present crew",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		report := store.DailyReport()
		if structured() {
			return renderStructured(report)
		}
		if report.PresentCount == 0 {
			fmt.Println("Nobody is marked present today")
			return nil
		}
		w := newTable()
		fmt.Fprintln(w, "NAME\tROLE\tWAGE")
		for _, line := range report.Lines {
			fmt.Fprintf(w, "%s\t%s\t%s\n", line.Name, line.Role, money(line.Wage))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Today (%d workers): %s\n", report.PresentCount, money(report.Total))
		summary := store.Summary()
		fmt.Printf("Cycle so far: accumulated %s, advances %s, net %s\n",
			money(summary.TotalAccumulated), money(summary.TotalAdvance), money(summary.TotalNet))
		return nil
	},
}

var crewCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Close the working day (run at most once per day)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		count, err := store.CheckoutDay()
		if err != nil {
			return err
		}
		fmt.Printf("Checked out %d workers; wages rolled into their balances\n", count)
		return nil
	},
}

var crewClearCmd = &cobra.Command{
	Use:   "clear-cycle",
	Short: "Pay out the cycle and zero every balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.ClearCycle(); err != nil {
			return err
		}
		fmt.Println("Pay cycle cleared; all balances reset to zero")
		return nil
	},
}

func init() {
	crewAddCmd.Flags().StringVar(&crewRole, "role", "", "Role (free text)")
	crewAddCmd.Flags().StringVar(&crewType, "type", "", "Pay type: daily-rate|fixed-fee")
	crewAddCmd.Flags().Float64Var(&crewWage, "wage", 0, fmt.Sprintf("Daily wage (default %d)", sitemaster.DefaultDailyWage))

	crewEditCmd.Flags().String("name", "", "New name")
	crewEditCmd.Flags().StringVar(&crewRole, "role", "", "New role")
	crewEditCmd.Flags().StringVar(&crewType, "type", "", "New pay type")
	crewEditCmd.Flags().Float64Var(&crewWage, "wage", 0, "New daily wage")
	crewEditCmd.Flags().Float64("accumulated", 0, "Corrected accumulated wage")
	crewEditCmd.Flags().Float64("advance", 0, "Corrected advance payment")

	crewCmd.AddCommand(crewAddCmd, crewListCmd, crewEditCmd, crewRemoveCmd,
		crewToggleCmd, crewReportCmd, crewCheckoutCmd, crewClearCmd)
}
