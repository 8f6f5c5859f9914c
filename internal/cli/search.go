package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fapah/docmanager/internal/document"
)

type searchFlags struct {
	seed     string
	prefixes []string
	contains []string
	authors  []string
	from     string
	to       string
	output   string
}

func (a *app) newSearchCmd() *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search documents loaded from a seed file",
		Long: `Loads documents from a TOML seed file into a fresh store and runs one search.
Values of a repeated flag are ORed; different flags are ANDed. Time bounds are
exclusive and use RFC 3339.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.seed, "seed", a.cfg.Store.SeedFile, "TOML seed file with [[documents]]")
	cmd.Flags().StringArrayVar(&f.prefixes, "title-prefix", nil, "title prefix to match (repeatable)")
	cmd.Flags().StringArrayVar(&f.contains, "contains", nil, "content substring to match (repeatable)")
	cmd.Flags().StringArrayVar(&f.authors, "author", nil, "author id to match (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "only documents created after this time")
	cmd.Flags().StringVar(&f.to, "to", "", "only documents created before this time")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputText, "output format (text, yaml)")
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, f *searchFlags) error {
	if err := validateOutput(f.output); err != nil {
		return err
	}
	req, err := f.request(cmd)
	if err != nil {
		return err
	}

	svc, err := a.newStore()
	if err != nil {
		return err
	}
	if err := seedStore(svc, f.seed); err != nil {
		return err
	}

	results, err := svc.Search(req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if f.output == outputText {
		cmd.Printf("Results (%d of %d):\n", len(results), svc.Count())
	}
	return printDocuments(cmd, results, f.output)
}

// request turns the flags into a SearchRequest. Flags that were not given
// stay nil so they do not constrain the search.
func (f *searchFlags) request(cmd *cobra.Command) (*document.SearchRequest, error) {
	req := &document.SearchRequest{}
	if cmd.Flags().Changed("title-prefix") {
		req.TitlePrefixes = f.prefixes
	}
	if cmd.Flags().Changed("contains") {
		req.ContainsContents = f.contains
	}
	if cmd.Flags().Changed("author") {
		req.AuthorIDs = f.authors
	}
	var err error
	if req.CreatedFrom, err = parseBound("from", f.from); err != nil {
		return nil, err
	}
	if req.CreatedTo, err = parseBound("to", f.to); err != nil {
		return nil, err
	}
	return req, nil
}

func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %v", document.ErrInvalidArgument, name, err)
	}
	return &t, nil
}
