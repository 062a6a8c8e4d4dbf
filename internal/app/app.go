package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/revealtour/internal/cli"
	"github.com/agbru/revealtour/internal/config"
	apperrors "github.com/agbru/revealtour/internal/errors"
	"github.com/agbru/revealtour/internal/logging"
	"github.com/agbru/revealtour/internal/metrics"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/stage"
	"github.com/agbru/revealtour/internal/tour"
	"github.com/agbru/revealtour/internal/tui"
	"github.com/agbru/revealtour/internal/ui"
)

// tracerName identifies the spans this application emits.
const tracerName = "github.com/agbru/revealtour"

// Application represents the revealtour application instance.
type Application struct {
	Config    config.AppConfig
	Tour      *tour.Tour
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithTour plays t instead of the configured tour file or the built-in tour.
func WithTour(t *tour.Tour) AppOption {
	return func(a *Application) { a.Tour = t }
}

// New creates a new Application instance by parsing command-line arguments
// and loading the tour.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "revealtour"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Tour == nil {
		t, err := loadTour(cfg.TourFile)
		if err != nil {
			fmt.Fprintln(errWriter, "Error:", err)
			return nil, err
		}
		app.Tour = t
	}
	return app, nil
}

func loadTour(path string) (*tour.Tour, error) {
	if path == "" {
		return tour.Default(), nil
	}
	return tour.LoadFile(path)
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	logger := a.newLogger()
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	if a.Config.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancelTimeout()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runSession(ctx, out, logger)
}

// newLogger returns the diagnostic logger, writing to ErrWriter at the
// configured level.
func (a *Application) newLogger() logging.Logger {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	return logging.NewConsoleLogger(a.ErrWriter, "revealtour")
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, tourRefs(a.Tour)); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runSession builds the stage and the orchestrator, then plays the tour in
// the selected host while the metrics server, if any, runs alongside.
func (a *Application) runSession(ctx context.Context, out io.Writer, logger logging.Logger) int {
	cfg := a.Config
	st := stage.New(a.Tour, stage.WithContinuous(cfg.Continuous...), stage.WithMissing(cfg.Missing...))
	m := metrics.NewMetrics()

	var events *tui.EventLog
	var hooks orchestration.Hooks
	switch {
	case cfg.TUI:
		events = tui.NewEventLog(tui.DefaultLogCapacity)
		hooks = events.Hooks()
	case cfg.Verbose:
		hooks = cli.NewEventPrinter(out).Hooks()
	}

	o := orchestration.NewOrchestrator(a.Tour, st.Resolver(), st,
		orchestration.WithLogger(logger),
		orchestration.WithRecorder(m),
		orchestration.WithHooks(hooks),
		orchestration.WithHoverPeriod(cfg.HoverPeriod),
		orchestration.WithTracer(otel.Tracer(tracerName)),
	)

	g, gctx := errgroup.WithContext(ctx)
	sessionCtx, endSession := context.WithCancel(gctx)
	defer endSession()

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, m, logger)
		g.Go(func() error { return srv.Serve(sessionCtx) })
	}

	exitCode := apperrors.ExitSuccess
	g.Go(func() error {
		defer endSession()
		if cfg.TUI {
			exitCode = tui.Run(sessionCtx, o, st, events, cfg)
			return nil
		}
		return a.runHeadless(sessionCtx, out, o, st, logger)
	})

	if err := g.Wait(); err != nil {
		return a.handleError(err)
	}
	return exitCode
}

// runHeadless plays the tour without a terminal UI.
func (a *Application) runHeadless(ctx context.Context, out io.Writer, o *orchestration.Orchestrator, st *stage.Stage, logger logging.Logger) error {
	cfg := a.Config
	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, a.Tour, out)
	}

	runner := cli.NewRunner(o, st, cli.RunnerOptions{
		Tick:         cfg.Tick,
		Speed:        cfg.Speed,
		Simulate:     cfg.Simulate,
		Loop:         cfg.Loop,
		ShowProgress: !cfg.Quiet && !cfg.Verbose,
	}, out, logger)

	res, err := runner.Run(ctx)
	cli.PrintSummary(res, out)

	// A looping session only ends on a signal or on its timeout; reaching
	// the timeout is the normal way out.
	if cfg.Loop && errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// handleError reports a session error and maps it to an exit code.
func (a *Application) handleError(err error) int {
	if apperrors.IsContextError(err) {
		fmt.Fprintf(a.ErrWriter, "Tour interrupted: %v\n", err)
	} else {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return apperrors.ExitCodeFor(err)
}

// tourRefs lists every reference id of t for shell completion.
func tourRefs(t *tour.Tour) []string {
	if t == nil {
		return nil
	}
	var refs []string
	for _, id := range t.AnimatorRefs() {
		refs = append(refs, string(id))
	}
	for _, id := range t.ControlRefs() {
		refs = append(refs, string(id))
	}
	for _, id := range t.InputRefs() {
		refs = append(refs, string(id))
	}
	return refs
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
