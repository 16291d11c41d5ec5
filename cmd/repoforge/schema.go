/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for the project config",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := jsonschema.Reflector{
				RequiredFromJSONSchemaTags: true,
				ExpandedStruct:             true,
				DoNotReference:             true,
			}
			s := r.Reflect(&projectConfig{})
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
