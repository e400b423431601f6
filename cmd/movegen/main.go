package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movegraph/internal/authoring"
	"movegraph/internal/bootstrap"
)

type options struct {
	envFile string
	format  string
	stdout  bool
}

func NewLogger(level string) *zap.SugaredLogger {
	build := zap.NewProduction
	if level == "debug" {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func newRootCmd(in io.Reader, out io.Writer, clip authoring.Sink) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "movegen",
		Short: "Interactively author one moveset node",
		Long: `Prompts for the fields of a single move and copies a fragment ready to be
pasted into the body of moveset.json. The moveset file itself is never touched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuthor(opts, in, out, clip)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "env file to load before reading the environment")
	cmd.Flags().StringVar(&opts.format, "format", "", "fragment format: json or legacy (default FRAGMENT_FORMAT)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the fragment instead of copying it")

	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

func runAuthor(opts *options, in io.Reader, out io.Writer, clip authoring.Sink) error {
	cfg, err := bootstrap.Setup(opts.envFile)
	if err != nil {
		return fmt.Errorf("setup configuration: %w", err)
	}
	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	format := cfg.FragmentFormat
	if opts.format != "" {
		format = opts.format
	}

	draft, err := authoring.NewSession(in, out).Run()
	if err != nil {
		return err
	}

	fragment, err := authoring.Format(draft, format)
	if err != nil {
		return err
	}

	sink := clip
	if opts.stdout {
		sink = authoring.WriterSink{W: out}
	}
	if err := sink.Write(fragment); err != nil {
		return err
	}

	logger.Debugw("fragment ready", "move", draft.Name, "format", format, "stdout", opts.stdout)
	return nil
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, authoring.SystemClipboard{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "movegen:", err)
		os.Exit(1)
	}
}
