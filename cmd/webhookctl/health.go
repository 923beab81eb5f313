package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check relay and mem0 connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/health")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(healthCmd)
}
