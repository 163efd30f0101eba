// Command svgstyle prints the computed style of the elements of SVG files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benoitkugler/svgstyle/config"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/version"
)

type envKey struct{}

// env is the state shared by the commands
type env struct {
	cfg *config.Config
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{}
}

// initializeAppContext loads the configuration after the command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	configFile := cmd.String("config")
	cfg, err := config.LoadConfiguration(configFile)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	level := cfg.Logging.Level
	if cmd.Bool("debug") {
		level = "debug"
	}
	if err := logger.SetLevel(level); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	if len(configFile) == 0 {
		logger.ProgressLogger.Debug("Using defaults (no configuration file)")
	} else {
		logger.ProgressLogger.Debugw("Configuration loaded", zap.String("file", configFile))
	}
	logger.ProgressLogger.Debugw("Starting", zap.String("version", version.VersionString))
	return context.WithValue(ctx, envKey{}, &env{cfg: cfg}), nil
}

// errWasHandled is set once the error has been logged by exitErrHandler
var errWasHandled bool

// exitErrHandler replaces the default handler, which would exit the
// process from within Run.
func exitErrHandler(_ context.Context, _ *cli.Command, err error) {
	logger.ProgressLogger.Errorw("Program ended with error", zap.Error(err))
	errWasHandled = logger.ProgressLogger.Desugar().Core().Enabled(zapcore.ErrorLevel)
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "svgstyle",
		Usage:           "resolves the CSS style of SVG documents",
		Version:         version.Version,
		HideHelpCommand: true,
		Writer:          out,
		Before:          initializeAppContext,
		ExitErrHandler:  exitErrHandler,
		OnUsageError:    usageErrorHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log dropped rules and declarations"},
		},
		Commands: []*cli.Command{
			{
				Name:         "dump",
				Usage:        "Prints the computed style of each element (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       runDump,
				ArgsUsage:    "FILE...",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "css", Usage: "apply the user style sheet `FILE` (may be repeated)"},
					&cli.BoolFlag{Name: "xml", Usage: "use a strict XML parser instead of the HTML one"},
				},
			},
			{
				Name:         "tokens",
				Usage:        "Prints the tokens of a style sheet",
				OnUsageError: usageErrorHandler,
				Action:       runTokens,
				ArgsUsage:    "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "comments", Usage: "include comments"},
					&cli.BoolFlag{Name: "serialize", Usage: "print the tokens back as CSS"},
				},
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp(os.Stdout).Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errWasHandled {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = config.Default()
	} else {
		data, err = config.Dump(envFromContext(ctx).cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	if _, err = cmd.Root().Writer.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
