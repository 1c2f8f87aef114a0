package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-pdf-generator/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available template styles",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	for _, style := range templates.Styles() {
		def := templates.Select(style)
		marker := ""
		if style == templates.DefaultStyle {
			marker = " (default)"
		}
		fmt.Printf("%s%s: %d sections\n", def.Name, marker, len(def.SectionOrder))
	}
	return nil
}
