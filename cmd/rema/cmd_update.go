package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rema/library"
	"github.com/cwbudde/algo-rema/store"
)

func newUpdateCmd(a *app) *cobra.Command {
	var (
		oldLibraryPath string
		matrixPath     string
		libraryPath    string
		spectrum       string
		sourceDir      string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Merge new simulations into an existing response matrix",
		Long: `update rebuilds only the rows of an existing matrix for which the new
library has a strictly closer simulation. All other rows are copied from the
old matrix without reading any simulation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.spectrumName(spectrum)
			if err != nil {
				return err
			}

			oldLib, err := library.ReadDescriptor(oldLibraryPath)
			if err != nil {
				return err
			}
			newLib, err := library.ReadDescriptor(libraryPath)
			if err != nil {
				return err
			}

			a.log.Info("Reading matrix", zap.String("path", matrixPath))
			old, err := store.ReadMatrixOnly(cmd.Context(), matrixPath)
			if err != nil {
				return err
			}

			m, particles, err := a.builder(sourceDir).Update(cmd.Context(), oldLib, old, newLib, name)
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

	cmd.Flags().StringVar(&oldLibraryPath, "old-library", "", "library the existing matrix was built from")
	cmd.Flags().StringVarP(&matrixPath, "matrix", "m", "", "existing matrix container")
	cmd.Flags().StringVarP(&libraryPath, "library", "l", "", "library with the new simulations")
	cmd.Flags().StringVarP(&spectrum, "spectrum", "s", "", "name of the simulated spectrum in each source")
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "directory relative source paths are resolved against")
	cmd.Flags().StringVarP(&output, "output", "o", "rema_updated.db", "output container")
	_ = cmd.MarkFlagRequired("old-library")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("library")
	return cmd
}
