package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/janhq/furniture-api/internal/domain/catalog"
	"github.com/janhq/furniture-api/internal/infrastructure/catalogdata"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the furniture catalog",
	RunE:  runCatalog,
}

var selectCmd = &cobra.Command{
	Use:   "select <index>...",
	Short: "Print the catalog items at the given positions",
	Long:  `Print the catalog items at the given positions, in argument order. Unknown positions are skipped.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSelect,
}

func init() {
	catalogCmd.Flags().String("format", "table", "Output format: table or json")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := catalogdata.Load()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), cat.List())
	case "table":
		return writeCatalogTable(cmd.OutOrStdout(), cat.List())
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", arg, err)
		}
		indices = append(indices, index)
	}
	cat, err := catalogdata.Load()
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), cat.SelectByIndices(indices))
}

func writeCatalogTable(out io.Writer, items []catalog.Item) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPRICE\tTYPE\tSTYLE")
	for i, item := range items {
		fmt.Fprintf(w, "%d\t%s\t$%d\t%s\t%s\n", i, item.Name, item.Price, item.Properties.Type, item.Properties.Style)
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
