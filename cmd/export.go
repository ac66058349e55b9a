package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalsheet/internal/config"
	"github.com/theirongolddev/goalsheet/internal/log"
	"github.com/theirongolddev/goalsheet/internal/sheet"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write saved sheets as JSON to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge saved sheets from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	return withRegistry(func(_ config.Config, reg *sheet.Registry, logger *log.Logger) error {
		blob, err := reg.Export()
		if err != nil {
			return fmt.Errorf("encoding sheets: %w", err)
		}

		if len(args) == 0 {
			_, err = fmt.Println(string(blob))
			return err
		}
		if err := os.WriteFile(args[0], append(blob, '\n'), 0o600); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		logger.Info("sheets exported", log.FieldPath, args[0], log.FieldCount, reg.Len())
		return nil
	})
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}

	return withRegistry(func(_ config.Config, reg *sheet.Registry, logger *log.Logger) error {
		names, err := reg.Import(data)
		if err != nil {
			return fmt.Errorf("parsing import: %w", err)
		}
		logger.Info("sheets imported", log.FieldPath, args[0], log.FieldCount, len(names))
		if !flagQuiet {
			fmt.Printf("  Imported %d sheet(s)\n", len(names))
		}
		return nil
	})
}
