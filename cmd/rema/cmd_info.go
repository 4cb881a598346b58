package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rema/stats/spectrum"
	"github.com/cwbudde/algo-rema/store"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <container>",
		Short: "List the objects stored in a container",
		Long: `info lists every object of a container with its shape and total content.
Arrays additionally show their peak bin and content-weighted centroid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := store.Open(ctx, args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			objects, err := c.Objects(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tROWS\tCOLS\tTOTAL\tPEAK\tCENTROID")
			for _, o := range objects {
				switch o.Kind {
				case store.KindArray:
					v, err := c.Array(ctx, o.Name)
					if err != nil {
						return err
					}
					s := spectrum.Calculate(v)
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%d\t%.2f\n",
						o.Name, o.Kind, o.Rows, o.Cols, s.Total, s.MaxBin, s.Centroid)
				case store.KindMatrix:
					m, err := c.Matrix(ctx, o.Name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t-\t-\n",
						o.Name, o.Kind, o.Rows, o.Cols, floats.Sum(m.Data()))
				}
			}
			a.log.Debug("Listed container", zap.String("path", args[0]), zap.Int("objects", len(objects)))
			return w.Flush()
		},
	}
}
