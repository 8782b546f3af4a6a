// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRenderCommand(opts *options) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart into an SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows(in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			chart, _, err := opts.newChart(rows)
			if err != nil {
				return err
			}
			if err := chart.Draw(); err != nil {
				return err
			}
			if out == "-" {
				_, err = chart.WriteTo(cmd.OutOrStdout())
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if _, err := chart.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			log.Printf("Wrote %d candles to \"%s\".", chart.Data().Len(), out)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "Input file (.csv or .json), - reads JSON from stdin.")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output SVG file, - writes to stdout.")
	return cmd
}
