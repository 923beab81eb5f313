package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag    string
	secretFlag string
	rootCmd    = &cobra.Command{
		Use:   "webhookctl",
		Short: "CLI client for the mem0 webhook relay",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8000", "Webhook relay base URL")
	rootCmd.PersistentFlags().StringVarP(&secretFlag, "secret", "s", "", "Shared secret for X-Webhook-Signature headers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
