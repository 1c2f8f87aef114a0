package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-pdf-generator/internal/composing"
	"github.com/jonathan/cv-pdf-generator/internal/config"
	"github.com/jonathan/cv-pdf-generator/internal/observability"
	"github.com/jonathan/cv-pdf-generator/internal/rendering"
	"github.com/jonathan/cv-pdf-generator/internal/schemas"
	"github.com/jonathan/cv-pdf-generator/internal/templates"
	"github.com/jonathan/cv-pdf-generator/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render one CV record to PDF",
	Long:  "Validates a CV record JSON file, composes the document for the selected template style, and renders it to a PDF file.",
	RunE:  runGenerate,
}

var (
	generateConfigFile string
	generateRecordFile string
	generateStyle      string
	generateOutDir     string
	generateEngine     string
	generateChromePath string
	generatePhotoPath  string
	generateTimeout    int
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file (flag values take precedence)")
	generateCmd.Flags().StringVarP(&generateRecordFile, "record", "r", "", "Path to CV record JSON file (required)")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "Template style: professional, modern, or minimal (default professional)")
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "", "Output directory for the generated PDF (default current directory)")
	generateCmd.Flags().StringVar(&generateEngine, "engine", "", "Renderer engine: chromium or native (default chromium)")
	generateCmd.Flags().StringVar(&generateChromePath, "chrome-path", "", "Chrome/Chromium binary path (default $CHROME_PATH)")
	generateCmd.Flags().StringVar(&generatePhotoPath, "photo", "", "Photo file embedded into the header (optional)")
	generateCmd.Flags().IntVar(&generateTimeout, "timeout", 0, "Render timeout in seconds (default 60)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateConfigFile, config.Config{
		Record:         generateRecordFile,
		OutDir:         generateOutDir,
		Photo:          generatePhotoPath,
		Style:          generateStyle,
		Engine:         generateEngine,
		ChromePath:     generateChromePath,
		TimeoutSeconds: generateTimeout,
		Verbose:        generateVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Record == "" {
		return fmt.Errorf("--record is required")
	}

	outPath, err := generateOne(context.Background(), cfg.Record, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("PDF generated successfully: %s\n", outPath)
	return nil
}

// resolveConfig merges flag values over an optional config file and fills
// environment defaults.
func resolveConfig(configFile string, flags config.Config) (config.Config, error) {
	cfg := flags
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.ChromePath == "" {
		cfg.ChromePath = os.Getenv("CHROME_PATH")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// generateOne runs the full pipeline for one record file and returns the
// path of the written PDF.
func generateOne(ctx context.Context, recordPath string, cfg config.Config) (string, error) {
	printer := observability.NewPrinter(os.Stdout)

	data, err := os.ReadFile(recordPath)
	if err != nil {
		return "", fmt.Errorf("failed to read record file: %w", err)
	}

	if err := schemas.ValidateRecord(data); err != nil {
		return "", fmt.Errorf("record %s is not a valid CV payload: %w", recordPath, err)
	}

	rec, err := types.Decode(data)
	if err != nil {
		return "", err
	}

	if cfg.Photo != "" {
		photoRef, err := preparePhotoReference(cfg.Photo)
		if err != nil {
			return "", err
		}
		rec.Personal.PhotoReference = photoRef
	}

	style := cfg.Style
	if style == "" {
		style = rec.TemplateStyle
	}
	def := templates.Select(style)

	if cfg.Verbose {
		printer.PrintRecord(rec)
		printer.PrintTemplate(style, def)
	}

	doc := composing.Assemble(rec, def)
	if cfg.Verbose {
		printer.PrintDocument(doc)
	}

	renderer, err := rendering.NewRenderer(rendering.Options{
		Engine:     cfg.Engine,
		ChromePath: cfg.ChromePath,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return "", err
	}

	pdf, err := renderer.RenderPDF(ctx, doc)
	if err != nil {
		return "", err
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, outputFilename(rec))
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	if cfg.Verbose {
		engine := cfg.Engine
		if engine == "" {
			engine = rendering.EngineChromium
		}
		printer.PrintRenderResult(outPath, len(pdf), engine)
	}

	return outPath, nil
}

// outputFilename builds "First_Last_CV.pdf", falling back to "CV" and
// "Document" for missing name parts. The fallbacks exist only here; the
// rendered document itself uses empty strings for missing names.
func outputFilename(rec *types.CVRecord) string {
	first := strings.TrimSpace(rec.Personal.FirstName)
	if first == "" {
		first = "CV"
	}
	last := strings.TrimSpace(rec.Personal.LastName)
	if last == "" {
		last = "Document"
	}
	name := first + "_" + last + "_CV.pdf"
	return strings.ReplaceAll(name, " ", "_")
}

// preparePhotoReference turns a photo argument into something the header
// can embed: data URIs and URLs pass through, local files become base64
// data URIs.
func preparePhotoReference(photo string) (string, error) {
	if strings.HasPrefix(photo, "data:image") {
		return photo, nil
	}

	info, err := os.Stat(photo)
	if err != nil || info.IsDir() {
		// Not a local file; assume a URL the renderer can fetch.
		return photo, nil
	}

	raw, err := os.ReadFile(photo)
	if err != nil {
		return "", fmt.Errorf("failed to read photo file: %w", err)
	}

	imgType := strings.TrimPrefix(strings.ToLower(filepath.Ext(photo)), ".")
	if imgType == "jpg" {
		imgType = "jpeg"
	}
	if imgType == "" {
		imgType = "png"
	}

	return "data:image/" + imgType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
