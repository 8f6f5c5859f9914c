package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fapah/docmanager/internal/document"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample save, lookup and search scenario",
		Long: `Saves two documents by the same author into a fresh store, looks the
first one up by id and searches for content containing "second" or "test".`,
		Args: cobra.NoArgs,
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	svc, err := a.newStore()
	if err != nil {
		return err
	}

	author := &document.Author{ID: "1", Name: "John Doe"}
	doc1, err := svc.Save(&document.Document{Title: "Test Document", Content: "This is a test", Author: author})
	if err != nil {
		return fmt.Errorf("save first document: %w", err)
	}
	cmd.Println("Saved document: " + formatDocument(doc1))

	doc2, err := svc.Save(&document.Document{Title: "Document ABoba", Content: "This is a second doc", Author: author})
	if err != nil {
		return fmt.Errorf("save second document: %w", err)
	}
	cmd.Println("Saved document: " + formatDocument(doc2))

	found, ok, err := svc.FindByID(doc1.ID)
	if err != nil {
		return fmt.Errorf("find document: %w", err)
	}
	if ok {
		cmd.Println("Found document: " + formatDocument(found))
	} else {
		cmd.Println("Found document: none")
	}

	results, err := svc.Search(&document.SearchRequest{ContainsContents: []string{"second", "test"}})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	cmd.Printf("Search results (%d):\n", len(results))
	return printDocuments(cmd, results, outputText)
}
