package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-pdf-generator/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render every CV record in a directory",
	Long:  "Renders each *.json record in a directory to PDF. Renders run in parallel; the composing pipeline is pure, so concurrent records need no coordination.",
	RunE:  runBatch,
}

var (
	batchConfigFile  string
	batchDir         string
	batchStyle       string
	batchOutDir      string
	batchEngine      string
	batchChromePath  string
	batchTimeout     int
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to JSON config file (flag values take precedence)")
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing CV record JSON files (required)")
	batchCmd.Flags().StringVarP(&batchStyle, "style", "s", "", "Template style applied to every record (default: each record's own)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "", "Output directory for generated PDFs (default current directory)")
	batchCmd.Flags().StringVar(&batchEngine, "engine", "", "Renderer engine: chromium or native (default chromium)")
	batchCmd.Flags().StringVar(&batchChromePath, "chrome-path", "", "Chrome/Chromium binary path (default $CHROME_PATH)")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "Render timeout in seconds per document (default 60)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum parallel renders")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(batchConfigFile, config.Config{
		OutDir:         batchOutDir,
		Style:          batchStyle,
		Engine:         batchEngine,
		ChromePath:     batchChromePath,
		TimeoutSeconds: batchTimeout,
		Concurrency:    batchConcurrency,
		Verbose:        batchVerbose,
	})
	if err != nil {
		return err
	}
	if batchDir == "" {
		return fmt.Errorf("--dir is required")
	}

	records, err := listRecordFiles(batchDir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no .json record files found in %s", batchDir)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	for _, recordPath := range records {
		g.Go(func() error {
			outPath, err := generateOne(ctx, recordPath, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", recordPath, err)
			}
			fmt.Printf("PDF generated successfully: %s\n", outPath)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Rendered %d records\n", len(records))
	return nil
}

// listRecordFiles returns the .json files in dir, sorted for stable output
// ordering.
func listRecordFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read records directory: %w", err)
	}

	var records []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		records = append(records, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(records)
	return records, nil
}
