package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Work-time stopwatch and time logs",
}

var timerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stopwatch",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.StartTimer(); err != nil {
			return err
		}
		fmt.Printf("Timer running, accumulated %s\n", sitemaster.FormatDuration(store.Elapsed()))
		return nil
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the stopwatch and log the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		entry, err := store.StopTimer()
		if err != nil {
			return err
		}
		if entry != nil {
			fmt.Printf("Logged session %s\n", entry.Duration)
		}
		fmt.Printf("Timer paused at %s\n", sitemaster.FormatDuration(store.Elapsed()))
		return nil
	},
}

var timerResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the stopwatch to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.ResetTimer(); err != nil {
			return err
		}
		fmt.Println("Timer reset")
		return nil
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current stopwatch state",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		doc := store.Document()
		if structured() {
			return renderStructured(doc.Timer)
		}
		state := "idle"
		if doc.Timer.IsActive {
			state = "running"
		}
		fmt.Printf("%s  %s\n", sitemaster.FormatDuration(store.Elapsed()), state)
		return nil
	},
}

// The periodic display refresh lives here, not in the core: the ticker only
// re-reads the elapsed total once a second until interrupted.
var timerWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live stopwatch display until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fmt.Printf("\r%s", sitemaster.FormatDuration(store.Elapsed()))
			case <-interrupt:
				fmt.Println()
				return nil
			}
		}
	},
}

var timerLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage recorded work spans",
}

var (
	logDate     string
	logDuration string
)

var timerLogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time logs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		logs := store.ListTimeLogs()
		if structured() {
			return renderStructured(logs)
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tDATE\tDURATION\tDESCRIPTION")
		for _, l := range logs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", l.ID, l.Date, l.Duration, l.Desc)
		}
		return w.Flush()
	},
}

var timerLogAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Record a work span by hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		created, err := store.AddTimeLog(sitemaster.TimeLogInput{
			Date:     logDate,
			Duration: logDuration,
			Desc:     args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged %d: %s (%s)\n", created.ID, created.Desc, created.Duration)
		return nil
	},
}

var timerLogEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a time log",
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

		var patch types.TimeLogPatch
		if cmd.Flags().Changed("date") {
			patch.Date = &logDate
		}
		if cmd.Flags().Changed("duration") {
			patch.Duration = &logDuration
		}
		if cmd.Flags().Changed("desc") {
			desc, _ := cmd.Flags().GetString("desc")
			patch.Desc = &desc
		}
		updated, err := store.UpdateTimeLog(id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated log %d\n", updated.ID)
		return nil
	},
}

var timerLogRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a time log",
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
		if err := store.RemoveTimeLog(id); err != nil {
			return err
		}
		fmt.Printf("Removed log %d\n", id)
		return nil
	},
}

func init() {
	timerLogAddCmd.Flags().StringVar(&logDate, "date", "", "Day (defaults to today)")
	timerLogAddCmd.Flags().StringVar(&logDuration, "duration", "", "Duration HH:MM:SS")

	timerLogEditCmd.Flags().StringVar(&logDate, "date", "", "New day")
	timerLogEditCmd.Flags().StringVar(&logDuration, "duration", "", "New duration")
	timerLogEditCmd.Flags().String("desc", "", "New description")

	timerLogCmd.AddCommand(timerLogListCmd, timerLogAddCmd, timerLogEditCmd, timerLogRemoveCmd)
	timerCmd.AddCommand(timerStartCmd, timerStopCmd, timerResetCmd, timerStatusCmd, timerWatchCmd, timerLogCmd)
}
