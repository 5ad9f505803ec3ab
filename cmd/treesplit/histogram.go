package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/bluesky-social/treesplit/internal/histogram"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

var cmdHistogram = &cli.Command{
	Name:  "histogram",
	Usage: "sample random subtrees repeatedly and report how often each node was chosen",
	Flags: append(append([]cli.Flag{
		maxLabelFlag,
		&cli.StringFlag{
			Name:  "tree",
			Usage: "input tree; a random tree is generated if not set",
		},
		&cli.IntFlag{
			Name:  "trials",
			Usage: "number of samples to draw",
			Value: 100_000,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of concurrent sampling goroutines",
			Value: runtime.NumCPU(),
		},
		&cli.DurationFlag{
			Name:  "progress-interval",
			Usage: "log sampling progress this often; zero disables",
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to serve prometheus metrics on while running",
			EnvVars: []string{"TREESPLIT_METRICS_LISTEN"},
		},
	}, sourceFlags...), generatorFlags...),
	Action: runHistogram,
}

func runHistogram(cctx *cli.Context) error {
	ctx := cctx.Context
	src := newSource(cctx)
	t, err := inputTree(cctx, src)
	if err != nil {
		return err
	}

	if addr := cctx.String("metrics-listen"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: addr, Handler: mux}
		go func() {
			slog.Info("metrics server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "err", err)
			}
		}()
		defer srv.Close()
	}

	res, err := histogram.Run(ctx, t, &histogram.Config{
		Trials:  cctx.Int("trials"),
		Workers: cctx.Int("workers"),
		Seed:    int64(src.IntRange(0, 1<<31)),

		ProgressInterval: cctx.Duration("progress-interval"),
	})
	if err != nil {
		return err
	}

	w := cctx.App.Writer
	fmt.Fprintf(w, "tree: %s\n", t)
	fmt.Fprintf(w, "%-6s %-9s %-10s %-5s %s\n", "INDEX", "COUNT", "EXPECTED", "MULT", "NODE")
	for _, b := range res.Buckets {
		fmt.Fprintf(w, "%-6d %-9d %-10.1f %-5d %s\n", b.Index, b.Count, b.Expected, b.Multiplicity, b.Node)
	}
	fmt.Fprintf(w, "nodes=%d trials=%d chi2=%.3f df=%d\n", res.Nodes, res.Trials, res.ChiSquared, res.DegreesOfFreedom())
	return nil
}
