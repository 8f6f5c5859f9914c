package cli

import (
	"github.com/spf13/cobra"

	"github.com/fapah/docmanager/internal/document"
)

func (a *app) newGetCmd() *cobra.Command {
	var seed, output string
	cmd := &cobra.Command{
		Use:   "get [doc-id]",
		Short: "Show one document loaded from a seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			svc, err := a.newStore()
			if err != nil {
				return err
			}
			if err := seedStore(svc, seed); err != nil {
				return err
			}
			d, ok, err := svc.FindByID(args[0])
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("Document not found.")
				return nil
			}
			return printDocuments(cmd, []*document.Document{d}, output)
		},
	}
	cmd.Flags().StringVar(&seed, "seed", a.cfg.Store.SeedFile, "TOML seed file with [[documents]]")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, yaml)")
	return cmd
}
