package cli

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/fapah/docmanager/internal/config"
	"github.com/fapah/docmanager/internal/document"
	"github.com/fapah/docmanager/internal/document/service"
	"github.com/fapah/docmanager/pkg/logger"
	"github.com/fapah/docmanager/pkg/metrics"
)

// app carries what every subcommand needs: configuration and flags shared
// through the root command.
type app struct {
	cfg         *config.Config
	logLevel    string
	showMetrics bool
	registry    *prometheus.Registry
}

// NewRootCmd builds the docmanager command tree. Each call returns an
// independent tree so tests can run commands without shared flag state.
// Results go to stdout; logs and the metrics summary go to stderr.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "docmanager",
		Short: "In-memory document store",
		Long: `docmanager keeps documents in memory and answers lookups by id and
filtered searches by title prefix, content, author and creation time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logLevel != "" {
				logger.Init(a.logLevel)
			}
			if a.showMetrics {
				a.registry = prometheus.NewRegistry()
				metrics.RegisterCollectors(a.registry)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.registry == nil {
				return nil
			}
			return a.printMetrics(cmd)
		},
	}
	root.SetOut(os.Stdout)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	root.PersistentFlags().BoolVar(&a.showMetrics, "metrics", cfg.Metrics.Enabled, "print store metrics to stderr after the command; defaults to METRICS_ENABLED")

	root.AddCommand(a.newDemoCmd())
	root.AddCommand(a.newSearchCmd())
	root.AddCommand(a.newGetCmd())
	return root
}

func (a *app) newStore() (*service.DocumentStore, error) {
	gen, err := document.IDGeneratorFor(a.cfg.Store.IDFormat)
	if err != nil {
		return nil, err
	}
	return service.NewMemoryService(service.WithIDGenerator(gen)), nil
}

// printMetrics writes the store collectors in the Prometheus text format.
func (a *app) printMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	w := cmd.ErrOrStderr()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
