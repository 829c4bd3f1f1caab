package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akyairhashvil/holdclock/internal/config"
	"github.com/akyairhashvil/holdclock/internal/countdown"
	"github.com/akyairhashvil/holdclock/internal/tui"
	"github.com/akyairhashvil/holdclock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	minutes    int
	seconds    int
	configPath string
	theme      string
	logFile    string
	verbose    bool
	plain      bool
}

type app struct {
	out         io.Writer
	clock       countdown.Clock
	isTerminal  func() bool
	programOpts []tea.ProgramOption
	opts        options
}

func main() {
	a := &app{
		out:        os.Stdout,
		clock:      countdown.SystemClock,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Cart reservation countdown",
		Long: `holdclock shows how long the items in a cart stay reserved.

The countdown starts at the configured MM:SS, ticks once per second and stops
at 00:00. Without a terminal on stdout it prints one line per tick instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&a.opts.minutes, "minutes", "m", config.DefaultMinutes, "starting minutes")
	f.IntVarP(&a.opts.seconds, "seconds", "s", config.DefaultSeconds, "starting seconds (0-59)")
	f.StringVar(&a.opts.configPath, "config", filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName), "path to YAML config")
	f.StringVar(&a.opts.theme, "theme", "", "color theme (default, dracula)")
	f.StringVar(&a.opts.logFile, "log-file", filepath.Join(util.DataDir(config.AppName), config.LogFileName), "JSON log destination, empty to disable")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log every tick")
	f.BoolVar(&a.opts.plain, "plain", false, "print ticks instead of drawing the TUI")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	settings, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("minutes") {
		settings.Minutes = a.opts.minutes
	}
	if cmd.Flags().Changed("seconds") {
		settings.Seconds = a.opts.seconds
	}
	if a.opts.theme != "" {
		settings.Theme = a.opts.theme
	}

	cd, err := countdown.New(settings.Minutes, settings.Seconds)
	if err != nil {
		return err
	}

	logger, err := util.NewLogger(a.opts.logFile, a.opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !tui.SetTheme(settings.Theme) {
		logger.Warn("unknown theme, using default", zap.String("theme", settings.Theme))
	}
	logger.Info("reservation started",
		zap.String("remaining", cd.Remaining().String()),
		zap.Bool("plain", a.opts.plain))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.opts.plain || !a.isTerminal() {
		return runPlain(ctx, a.out, cd, settings.Banner, logger, a.clock)
	}

	return runTUI(ctx, cd, settings.Banner, logger, a.programOpts...)
}

func runTUI(ctx context.Context, cd *countdown.Countdown, banner string, logger *zap.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(tui.NewMainModel(cd, banner, logger), opts...)
	_, err := p.Run()
	// A signal tears the reservation down; that is a normal exit.
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("reservation released", zap.Error(ctx.Err()))
		return nil
	}
	util.LogError(logger, "tui exited", err)
	return err
}

func runPlain(ctx context.Context, out io.Writer, cd *countdown.Countdown, banner string, logger *zap.Logger, clock countdown.Clock) error {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, tui.ReservedLine(cd.Remaining()))

	r := countdown.NewRunner(cd,
		countdown.WithClock(clock),
		countdown.WithLogger(logger),
		countdown.WithObserver(func(rt countdown.RemainingTime) {
			fmt.Fprintln(out, tui.ReservedLine(rt))
		}),
	)
	if err := r.Start(ctx); err != nil {
		return err
	}
	defer r.Stop()

	<-r.Done()
	if r.Finished() {
		fmt.Fprintln(out, config.ExpiredMessage)
	}
	return nil
}
