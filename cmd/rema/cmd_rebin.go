package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rema/store"
)

func newRebinCmd(a *app) *cobra.Command {
	var (
		matrixPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "rebin",
		Short: "Sum blocks of bins of a matrix container",
		Long: `rebin merges every --binning consecutive bins of the matrix and of the
particle counts into one bin and writes the result to a new container.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, particles, err := store.ReadMatrix(cmd.Context(), matrixPath)
			if err != nil {
				return err
			}

			rm, err := m.Rebin(a.cfg.Binning)
			if err != nil {
				return fmt.Errorf("rebin matrix: %w", err)
			}
			rp, err := particles.Rebin(a.cfg.Binning)
			if err != nil {
				return fmt.Errorf("rebin particles: %w", err)
			}

			if err := store.WriteMatrix(cmd.Context(), output, rm, rp); err != nil {
				return err
			}
			a.log.Info("Wrote rebinned matrix",
				zap.String("path", output),
				zap.Int("binning", a.cfg.Binning),
				zap.Int("bins", rm.N()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&matrixPath, "matrix", "m", "", "matrix container")
	cmd.Flags().StringVarP(&output, "output", "o", "rema_rebinned.db", "output container")
	_ = cmd.MarkFlagRequired("matrix")
	return cmd
}
