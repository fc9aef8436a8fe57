package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/will4381/comic-slideshows/internal/app"
	"github.com/will4381/comic-slideshows/internal/scenario"
	"github.com/will4381/comic-slideshows/pkg/config"
)

var (
	generateProvider  string
	generateOutputDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a comic slideshow",
	Long:  `Generate a batch of scenarios and render one comic image per scenario.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateProvider, "provider", "p", "", "Scenario provider (openai or groq)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Directory for slideshow folders")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if generateProvider != "" {
		cfg.Scenario.Provider = generateProvider
	}
	if generateOutputDir != "" {
		cfg.Output.Dir = generateOutputDir
	}

	service, err := app.BuildService(cfg)
	if err != nil {
		return err
	}

	pipeline := app.NewPipeline(service)
	result, err := pipeline.Generate(cmd.Context())
	if err != nil {
		return err
	}

	if result.Generated == 0 {
		fmt.Println("No images generated")
		return nil
	}

	fmt.Printf("Generated %d of %d images in %s\n", result.Generated, scenario.BatchSize, result.OutputDir)
	return nil
}
