package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fapah/docmanager/internal/document"
	"github.com/fapah/docmanager/internal/document/service"
)

type seedFile struct {
	Documents []*document.Document `toml:"documents"`
}

// LoadSeed reads documents from a TOML file of [[documents]] tables.
func LoadSeed(path string) ([]*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return sf.Documents, nil
}

// seedStore saves every document from path into svc.
func seedStore(svc service.Service, path string) error {
	if path == "" {
		return fmt.Errorf("%w: no seed file given (use --seed or DOCSTORE_SEED_FILE)", document.ErrInvalidArgument)
	}
	docs, err := LoadSeed(path)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if _, err := svc.Save(d); err != nil {
			return fmt.Errorf("seed document %d: %w", i+1, err)
		}
	}
	return nil
}
