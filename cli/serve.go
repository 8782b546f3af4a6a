// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"candlelight/viewer"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	var in, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive chart to the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows(in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			chart, appConfig, err := opts.newChart(rows)
			if err != nil {
				return err
			}
			if err := chart.Draw(); err != nil {
				return err
			}
			if addr == "" {
				addr = appConfig.Viewer.ListenAddr
			}
			server, err := viewer.NewServer(chart, log.StandardLogger())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = server.ListenAndServe(ctx, addr)
			if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "Input file (.csv or .json), - reads JSON from stdin.")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, defaults to the configured address.")
	return cmd
}
