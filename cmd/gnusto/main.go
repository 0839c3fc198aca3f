// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the gnusto command: a terminal driver for
// the engine, built around the bundled clearing-and-cellar demo
// blueprint.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mdhender/semver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gnusto-if/gnusto/internal/blueprint"
	"github.com/gnusto-if/gnusto/internal/engine"
	"github.com/gnusto-if/gnusto/internal/ioboundary"
	"github.com/gnusto-if/gnusto/internal/metrics"
	"github.com/gnusto-if/gnusto/internal/store/sqlitestore"
)

var (
	version = semver.Version{Major: 0, Minor: 1, Patch: 0}

	argsRoot struct {
		paths struct {
			config   string // JSON file overriding blueprint.Config tunables
			database string // directory holding the save-slot database
		}
		metrics bool
		version semver.Version
	}

	cmdRoot = &cobra.Command{
		Use:   "gnusto",
		Short: "play the bundled demo game",
		Long:  `Gnusto is an interactive-fiction engine core. This command plays its bundled demo game.`,
	}

	cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "play the demo game against the terminal",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if argsRoot.paths.database == "" {
				return nil
			}
			path, err := abspath(argsRoot.paths.database)
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			argsRoot.paths.database = path
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			bp := newDemoBlueprint()
			if argsRoot.paths.config != "" {
				cfg, err := blueprint.LoadOverride(argsRoot.paths.config, bp.Config, false)
				if err != nil {
					log.Fatalf("error: config: %v\n", err)
				}
				bp.Config = cfg
			}
			if argsRoot.metrics {
				bp.SetMetrics(newRegisteredRecorder())
			}

			e, err := engine.New(bp)
			if err != nil {
				log.Fatalf("error: blueprint: %v\n", err)
			}

			if argsRoot.paths.database != "" {
				store, err := sqlitestore.OpenOrCreateStore(argsRoot.paths.database, context.Background())
				if err != nil {
					log.Fatalf("error: database: %v\n", err)
				}
				defer func() { _ = store.Close() }()
				e.SetSaveStore(store)
				log.Printf("saves: %s\n", argsRoot.paths.database)
			}

			if err := e.Run(ioboundary.NewTerminal(os.Stdin, os.Stdout)); err != nil {
				log.Fatalf("error: %v\n", err)
			}
		},
	}

	cmdValidateBlueprint = &cobra.Command{
		Use:   "validate-blueprint",
		Short: "build the demo blueprint and report whether it assembles cleanly",
		Run: func(cmd *cobra.Command, args []string) {
			bp := newDemoBlueprint()
			if argsRoot.paths.config != "" {
				cfg, err := blueprint.LoadOverride(argsRoot.paths.config, bp.Config, false)
				if err != nil {
					log.Fatalf("error: config: %v\n", err)
				}
				bp.Config = cfg
			}
			if _, err := bp.Build(); err != nil {
				fmt.Printf("invalid: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("ok")
		},
	}

	cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "print the version number of this application",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", version.String())
		},
	}
)

// newRegisteredRecorder builds a Recorder against a fresh Registry.
// Serving that Registry from an http server is left for a host to
// add; play itself just keeps the counters warm so --metrics is a
// visible smoke test of the wiring, not a promise of a scrape
// endpoint.
func newRegisteredRecorder() *metrics.Recorder {
	return metrics.NewRecorder(prometheus.NewRegistry())
}

func main() {
	argsRoot.version = version

	cmdRoot.PersistentFlags().StringVarP(&argsRoot.paths.config, "config", "c", "", "path to a blueprint config JSON file")
	cmdPlay.Flags().StringVarP(&argsRoot.paths.database, "database", "d", "", "path to folder holding save-slot database (created if absent)")
	cmdPlay.Flags().BoolVar(&argsRoot.metrics, "metrics", false, "wire a Prometheus recorder into the run")

	cmdRoot.AddCommand(cmdPlay, cmdValidateBlueprint, cmdVersion)

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}
