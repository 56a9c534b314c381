package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// structured reports whether the output format bypasses the table renderer.
func structured() bool {
	return format == "json" || format == "yaml"
}

// renderStructured prints v as JSON or YAML per the --format flag.
func renderStructured(v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
	return nil
}

// newTable returns a tab-aligned writer for the default table format.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// money renders an amount with the fixed display currency.
func money(v float64) string {
	return "฿" + strconv.FormatFloat(v, 'f', -1, 64)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
