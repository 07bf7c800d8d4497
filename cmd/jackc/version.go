package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of jackc",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "json":
			data, err := marshalJSON(map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		case "", "text":
			fmt.Fprintf(cmd.OutOrStdout(), "jackc %s (commit %s, built %s)\n", version, commit, date)
		default:
			return fmt.Errorf("unknown output format: %s", format)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
}
