package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	var user, category string
	var meta []string

	postCmd := &cobra.Command{
		Use:   "post CONTENT",
		Short: "Post one memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"content": args[0]}
			if user != "" {
				payload["user_id"] = user
			}
			if category != "" {
				payload["category"] = category
			}
			if len(meta) > 0 {
				m, err := parseMeta(meta)
				if err != nil {
					return err
				}
				payload["metadata"] = m
			}
			data, err := doPostJSON(apiFlag+"/webhook/memory", payload, secretFlag)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	postCmd.Flags().StringVarP(&user, "user", "u", "", "User ID (defaults to the relay's configured user)")
	postCmd.Flags().StringVarP(&category, "category", "c", "", "Memory category")
	postCmd.Flags().StringArrayVarP(&meta, "meta", "m", nil, "Extra metadata as key=value (repeatable)")
	rootCmd.AddCommand(postCmd)
}

func parseMeta(kvs []string) (map[string]interface{}, error) {
	m := make(map[string]interface{}, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --meta %q, expected key=value", kv)
		}
		m[k] = v
	}
	return m, nil
}
