package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janhq/furniture-api/pkg/codegen"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [name]",
	Short: "Print or generate JSON Schemas for the API types",
	Long: `Print the JSON Schema of one API type, list the available names,
or write every schema into a directory with --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().String("out", "", "Write all schemas into this directory")
}

func runSchema(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if dir, _ := cmd.Flags().GetString("out"); dir != "" {
		written, err := codegen.GenerateJSONSchema(dir)
		for _, path := range written {
			fmt.Fprintf(out, "✓ Generated %s\n", path)
		}
		return err
	}

	if len(args) == 0 {
		for _, name := range codegen.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	data, err := codegen.MarshalSchema(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
