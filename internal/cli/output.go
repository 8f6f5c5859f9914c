package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fapah/docmanager/internal/document"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	}
	return fmt.Errorf("%w: output must be %s or %s, got %q", document.ErrInvalidArgument, outputText, outputYAML, format)
}

func printDocuments(cmd *cobra.Command, docs []*document.Document, format string) error {
	if format == outputYAML {
		data, err := yaml.Marshal(docs)
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Print(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}
	for i, d := range docs {
		cmd.Printf("  [%d] %s\n", i+1, formatDocument(d))
	}
	return nil
}

func formatDocument(d *document.Document) string {
	author := ""
	if d.Author != nil {
		author = fmt.Sprintf("%s (%s)", d.Author.Name, d.Author.ID)
	}
	return fmt.Sprintf("%s %q by %s, created %s: %s", d.ID, d.Title, author, d.Created.UTC().Format(time.RFC3339), d.Content)
}
