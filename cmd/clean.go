package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/will4381/comic-slideshows/pkg/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated slideshow folders",
	Long:  `Delete all generation_* folders from the output directory.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	matches, err := filepath.Glob(filepath.Join(cfg.Output.Dir, "generation_*"))
	if err != nil {
		return fmt.Errorf("list slideshow folders: %w", err)
	}

	removed := 0
	for _, dir := range matches {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("remove %s: %w", dir, err)
		}
		removed++
	}

	fmt.Printf("Removed %d slideshow folder(s)\n", removed)
	return nil
}
