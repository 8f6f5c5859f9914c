package main

import (
	"fmt"
	"os"

	"github.com/fapah/docmanager/internal/cli"
	"github.com/fapah/docmanager/internal/config"
	"github.com/fapah/docmanager/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	defer logger.Sync()
	logger.Debugf("startup: LOG_LEVEL=%s id_format=%s", logger.LevelString(), cfg.Store.IDFormat)

	root := cli.NewRootCmd(cfg)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
