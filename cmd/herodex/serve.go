package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/herodex/herodex/internal/interfaces/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser UI API",
		Long: `Start the local HTTP server backing the browser UI.

The UI exposes two actions (create hero, generate chapter) and read-only
hero views. Portraits are served under /images.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from config)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		log := logrus.New()
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		if addr == "" {
			addr = d.Config.Server.Addr
		}

		server := web.NewServer(d.CreateHandler, d.ChapterHandler, d.RosterHandler, d.ImagesDir, log)
		return server.Run(ctx, addr)
	})
}
