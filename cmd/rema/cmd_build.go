package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rema/library"
	"github.com/cwbudde/algo-rema/response"
	"github.com/cwbudde/algo-rema/store"
)

func (a *app) builder(sourceDir string) *response.Builder {
	return response.NewBuilder(store.SpectrumLoader{Dir: sourceDir},
		response.WithBins(a.cfg.Bins),
		response.WithWorkers(a.cfg.Workers),
		response.WithLogger(a.log))
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		libraryPath string
		spectrum    string
		sourceDir   string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Create a response matrix from a simulation library",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.spectrumName(spectrum)
			if err != nil {
				return err
			}

			a.log.Info("Reading library", zap.String("path", libraryPath))
			lib, err := library.ReadDescriptor(libraryPath)
			if err != nil {
				return err
			}

			m, particles, err := a.builder(sourceDir).Build(cmd.Context(), lib, name)
			if err != nil {
				return err
			}

			if err := store.WriteMatrix(cmd.Context(), output, m, particles); err != nil {
				return err
			}
			a.log.Info("Wrote matrix", zap.String("path", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&libraryPath, "library", "l", "", "library descriptor file (<source> <energy> <particles> per line)")
	cmd.Flags().StringVarP(&spectrum, "spectrum", "s", "", "name of the simulated spectrum in each source")
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "directory relative source paths are resolved against")
	cmd.Flags().StringVarP(&output, "output", "o", "rema.db", "output container")
	_ = cmd.MarkFlagRequired("library")
	return cmd
}
