package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/assets"
	"github.com/xumofan/prompt2/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and example inputs to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := fs.ReadDir(assets.Templates, "templates")
		if err != nil {
			return fmt.Errorf("failed to read embedded templates: %w", err)
		}

		count := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()

			// Never clobber files the user may have edited already.
			if _, err := os.Stat(name); err == nil {
				output.Logger.Info("Skipping existing file", "file", name)
				continue
			}

			content, err := fs.ReadFile(assets.Templates, "templates/"+name)
			if err != nil {
				output.Logger.Error("Failed to read embedded file", "file", name, "error", err)
				continue
			}
			if err := os.WriteFile(name, content, 0644); err != nil {
				output.Logger.Error("Failed to write file", "file", name, "error", err)
				continue
			}

			output.Logger.Info("Wrote starter file", "file", name)
			count++
		}

		output.Logger.Info("Init complete", "new_files", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
