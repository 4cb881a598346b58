package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-rema/store"
	"github.com/cwbudde/algo-rema/uncertainty"
)

func newCombineCmd(a *app) *cobra.Command {
	var (
		output     string
		valuesPath string
		lowerPath  string
		upperPath  string
		clamp      bool
	)

	cmd := &cobra.Command{
		Use:   "combine <uncertainty-file>...",
		Short: "Add uncertainty arrays in quadrature",
		Long: `combine reads one tab-separated uncertainty array per file, adds them in
quadrature and writes the total. Every array must hold bins/binning values.

With --values, the lower and upper edges of values ± total are written as
well. A values file that cannot be read is reported and the limits are
skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := uncertainty.NewAggregator(a.cfg.Bins, a.cfg.Binning, nil)
			if err != nil {
				return err
			}

			arrays := make([][]float64, 0, len(args))
			for _, path := range args {
				v, err := store.ReadScalars(path)
				if err != nil {
					return err
				}
				arrays = append(arrays, v)
			}

			total, err := agg.Combine(arrays)
			if err != nil {
				return err
			}
			if err := store.WriteScalars(output, total); err != nil {
				return err
			}
			a.log.Info("Wrote combined uncertainty", zap.String("path", output), zap.Int("inputs", len(arrays)))

			if valuesPath == "" {
				return nil
			}
			values, err := store.ReadScalars(valuesPath)
			if err != nil {
				a.log.Warn("Skipping limits", zap.Error(err))
				return nil
			}
			low, up, err := uncertainty.Limits(values, total, clamp)
			if err != nil {
				return err
			}
			if err := store.WriteScalars(lowerPath, low); err != nil {
				return err
			}
			return store.WriteScalars(upperPath, up)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "uncertainty.txt", "combined uncertainty output file")
	cmd.Flags().StringVar(&valuesPath, "values", "", "central values the uncertainty belongs to")
	cmd.Flags().StringVar(&lowerPath, "lower", "lower.txt", "lower limit output file")
	cmd.Flags().StringVar(&upperPath, "upper", "upper.txt", "upper limit output file")
	cmd.Flags().BoolVar(&clamp, "clamp", true, "raise negative lower limits to zero")
	return cmd
}
