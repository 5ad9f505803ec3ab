package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

type LogOptions struct {
	// path to write to; "" or "-" means stderr
	LogPath string

	// text|json
	LogFormat string

	// info|debug|warn|error
	LogLevel string

	// if set, takes precedence over LogPath. mostly for tests
	Output io.Writer
}

// Standard logging flags, shared by all sub-commands. Pair with LogOptionsFromCLI.
var LogFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity level (debug, info, warn, error)",
		EnvVars: []string{"TREESPLIT_LOG_LEVEL", "LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format (text, json)",
		EnvVars: []string{"TREESPLIT_LOG_FMT", "LOG_FORMAT"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "file path to write logs to, instead of stderr",
		EnvVars: []string{"TREESPLIT_LOG_FILE"},
	},
}

func LogOptionsFromCLI(cctx *cli.Context) LogOptions {
	return LogOptions{
		LogLevel:  cctx.String("log-level"),
		LogFormat: cctx.String("log-format"),
		LogPath:   cctx.String("log-file"),
	}
}

func firstenv(env_var_names ...string) string {
	for _, env_var_name := range env_var_names {
		val := os.Getenv(env_var_name)
		if val != "" {
			return val
		}
	}
	return ""
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %#v", s)
	}
}

// SetupSlog integrates passed in options and env vars, and installs the result as the slog default logger.
//
// passing default cliutil.LogOptions{} is ok.
//
// TREESPLIT_LOG_LEVEL=info|debug|warn|error
//
// TREESPLIT_LOG_FMT=text|json
//
// TREESPLIT_LOG_FILE=path (or "-" or "" for stderr)
//
// GOLOG_LOG_LEVEL and GOLOG_LOG_FMT are respected as fallbacks.
func SetupSlog(options LogOptions) (*slog.Logger, error) {
	if options.LogLevel == "" {
		options.LogLevel = firstenv("TREESPLIT_LOG_LEVEL", "GOLOG_LOG_LEVEL")
	}
	level, err := parseLevel(options.LogLevel)
	if err != nil {
		return nil, err
	}
	hopts := slog.HandlerOptions{Level: level}

	if options.LogFormat == "" {
		options.LogFormat = firstenv("TREESPLIT_LOG_FMT", "GOLOG_LOG_FMT")
	}
	if options.LogFormat == "" {
		options.LogFormat = "text"
	}
	options.LogFormat = strings.ToLower(options.LogFormat)

	if options.LogPath == "" {
		options.LogPath = firstenv("TREESPLIT_LOG_FILE")
	}
	out := options.Output
	if out == nil {
		if options.LogPath == "" || options.LogPath == "-" {
			out = os.Stderr
		} else {
			f, err := os.OpenFile(options.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", options.LogPath, err)
			}
			out = f
		}
	}

	var handler slog.Handler
	switch options.LogFormat {
	case "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", options.LogFormat)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
