package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bluesky-social/treesplit/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "treesplit",
		Usage:   "random subtree replacement for immutable binary trees",
		Version: versioninfo.Short(),
		Flags:   cliutil.LogFlags,
		Writer:  out,
		Before: func(cctx *cli.Context) error {
			_, err := cliutil.SetupSlog(cliutil.LogOptionsFromCLI(cctx))
			return err
		},
	}
	app.Commands = []*cli.Command{
		cmdGenerate,
		cmdSplit,
		cmdHistogram,
	}
	return app
}
