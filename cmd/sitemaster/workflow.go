package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Manage the construction workflow",
}

var (
	wfDate     string
	wfStatus   string
	wfSearch   string
	wfFilter   string
	wfSubTasks []string
)

var workflowAddCmd = &cobra.Command{
	Use:   "add <step>",
	Short: "Add a workflow step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := types.StepStatus(wfStatus)
		subTasks := make([]types.SubTask, len(wfSubTasks))
		for i, text := range wfSubTasks {
			subTasks[i] = types.SubTask{Text: text}
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		created, err := store.AddStep(sitemaster.StepInput{
			Step:     args[0],
			Date:     wfDate,
			Status:   status,
			SubTasks: subTasks,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added step %d: %s\n", created.ID, created.Step)
		return nil
	},
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflow steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		steps := store.ListSteps(wfSearch, types.StepStatus(wfFilter))
		if structured() {
			return renderStructured(steps)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tSTEP\tDATE\tSTATUS\tCHECKLIST")
		for _, step := range steps {
			done := 0
			for _, task := range step.SubTasks {
				if task.Completed {
					done++
				}
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d/%d\n",
				step.ID, step.Step, step.Date, step.Status, done, len(step.SubTasks))
		}
		return w.Flush()
	},
}

var workflowEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workflow step",
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

		var patch types.StepPatch
		if cmd.Flags().Changed("step") {
			step, _ := cmd.Flags().GetString("step")
			patch.Step = &step
		}
		if cmd.Flags().Changed("date") {
			patch.Date = &wfDate
		}
		if cmd.Flags().Changed("status") {
			status, err := types.ParseStepStatus(wfStatus)
			if err != nil {
				return err
			}
			patch.Status = &status
		}
		updated, err := store.UpdateStep(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated step %d: %s [%s]\n", updated.ID, updated.Step, updated.Status)
		return nil
	},
}

var workflowRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workflow step",
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
		if err := store.RemoveStep(id); err != nil {
			return err
		}
		fmt.Printf("Removed step %d\n", id)
		return nil
	},
}

var workflowDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Duplicate a step with a fresh checklist",
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
		created, err := store.DuplicateStep(id)
		if err != nil {
			return err
		}
		fmt.Printf("Duplicated as step %d: %s\n", created.ID, created.Step)
		return nil
	},
}

var workflowCheckCmd = &cobra.Command{
	Use:   "check <step-id> <task-index>",
	Short: "Toggle one checklist item on a step",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid task index %q", args[1])
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		updated, err := store.ToggleSubTask(id, index)
		if err != nil {
			return err
		}
		task := updated.SubTasks[index]
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s\n", mark, task.Text)
		return nil
	},
}

func init() {
	workflowAddCmd.Flags().StringVar(&wfDate, "date", "", "Display date (free text, e.g. \"21 Nov\" or \"today\")")
	workflowAddCmd.Flags().StringVar(&wfStatus, "status", "", "Status: pending|active|completed")
	workflowAddCmd.Flags().StringArrayVar(&wfSubTasks, "task", nil, "Checklist item (repeatable)")

	workflowListCmd.Flags().StringVar(&wfSearch, "search", "", "Filter by title substring")
	workflowListCmd.Flags().StringVar(&wfFilter, "status", "", "Filter by exact status")

	workflowEditCmd.Flags().String("step", "", "New title")
	workflowEditCmd.Flags().StringVar(&wfDate, "date", "", "New display date")
	workflowEditCmd.Flags().StringVar(&wfStatus, "status", "", "New status")

	workflowCmd.AddCommand(workflowAddCmd, workflowListCmd, workflowEditCmd,
		workflowRemoveCmd, workflowDuplicateCmd, workflowCheckCmd)
}
