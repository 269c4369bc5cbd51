package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/logdata/internal/adapters/utmp"
	"github.com/bnema/logdata/internal/application"
	"github.com/bnema/logdata/internal/config"
	"github.com/bnema/logdata/internal/logging"
	"github.com/bnema/logdata/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	all        bool
	sum        bool
	noProgress bool
	configPath string
	viper      *viper.Viper
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(wireApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	opts := &rootOptions{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "logdata [-a] [-s] [-f file] [username ...]",
		Short: "Show accumulated login time per user",
		Long: "logdata reads the login history log (wtmp) and prints, per user, the time spent " +
			"logged in across all recorded sessions. Sessions still open are counted until now.",
		Args:          cobra.ArbitraryArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "report every user found in the log")
	flags.BoolVarP(&opts.sum, "sum", "s", false, "print the total over all listed users")
	flags.StringP("file", "f", "", "session log to read (default "+utmp.DefaultPath+")")
	flags.StringP("output", "o", "", "output format: text, json or toml")
	flags.String("byte-order", "", "byte order of the session log: little or big")
	flags.String("log-level", "", "diagnostics level on stderr: trace, debug, info, warn, error")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "do not show the progress spinner")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/logdata/config.toml)")

	bindings := map[string]string{
		config.KeyLogFile:      "file",
		config.KeyOutputFormat: "output",
		config.KeyLogByteOrder: "byte-order",
		config.KeyLoggingLevel: "log-level",
	}
	for key, name := range bindings {
		if err := opts.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("bind flag %q: %w", name, err)
			}
			return rootCmd
		}
	}

	return rootCmd
}

func runReport(cmd *cobra.Command, app *app, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.viper, opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	order, err := utmp.ParseByteOrder(cfg.Log.ByteOrder)
	if err != nil {
		return err
	}

	source, err := app.openSource(cfg.Log.File, order, logger)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	svc := app.service(logger)

	var acc *application.Accumulator
	ingest := func(ctx context.Context) error {
		var ingestErr error
		acc, ingestErr = svc.Ingest(ctx, source)
		return ingestErr
	}

	if cfg.Output.Progress && !opts.noProgress && isTerminal(cmd.ErrOrStderr()) {
		err = runIngestSpinner(cmd.Context(), cmd.ErrOrStderr(), cfg.Log.File, ingest)
	} else {
		err = ingest(cmd.Context())
	}
	if err != nil {
		return err
	}

	report, err := svc.Report(acc, application.ReportQuery{
		Usernames: args,
		All:       opts.all,
		Sum:       opts.sum,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd, app, cfg, report)
}
