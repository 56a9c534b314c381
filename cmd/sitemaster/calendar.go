package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	calYear  int
	calMonth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Project the workflow onto a month grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		now := time.Now()
		year, month := calYear, time.Month(calMonth)
		if year == 0 {
			year = now.Year()
		}
		if calMonth == 0 {
			month = now.Month()
		} else if calMonth < 1 || calMonth > 12 {
			return fmt.Errorf("invalid month %d", calMonth)
		}

		grid := store.ProjectMonth(year, month)
		if structured() {
			return renderStructured(grid)
		}

		fmt.Printf("%s %d\n", month, year)
		fmt.Println("Sun  Mon  Tue  Wed  Thu  Fri  Sat")
		var line strings.Builder
		var busy []string
		for i, cell := range grid.Cells {
			if cell.Day == 0 {
				line.WriteString("     ")
			} else if len(cell.Steps) > 0 {
				line.WriteString(fmt.Sprintf("%3d* ", cell.Day))
				for _, step := range cell.Steps {
					busy = append(busy, fmt.Sprintf("%3d  %s [%s]", cell.Day, step.Step, step.Status))
				}
			} else {
				line.WriteString(fmt.Sprintf("%3d  ", cell.Day))
			}
			if (i+1)%7 == 0 {
				fmt.Println(strings.TrimRight(line.String(), " "))
				line.Reset()
			}
		}
		if line.Len() > 0 {
			fmt.Println(strings.TrimRight(line.String(), " "))
		}
		if len(busy) > 0 {
			fmt.Println()
			for _, entry := range busy {
				fmt.Println(entry)
			}
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().IntVar(&calYear, "year", 0, "Year (defaults to current)")
	calendarCmd.Flags().IntVar(&calMonth, "month", 0, "Month 1-12 (defaults to current)")
}
