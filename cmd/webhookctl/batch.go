package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Post a batch of memories from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			body, err := batchBody(raw)
			if err != nil {
				return err
			}
			data, err := doPostRaw(apiFlag+"/webhook/memories/batch", body, secretFlag)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(batchCmd)
}

// batchBody accepts either the full request object or a bare array of
// memories and returns the request body to send.
func batchBody(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty batch file")
	}
	if trimmed[0] == '[' {
		return json.Marshal(map[string]json.RawMessage{"memories": trimmed})
	}
	return raw, nil
}
