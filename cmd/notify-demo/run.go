package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vango-dev/notify/pkg/notify"
	"github.com/vango-dev/notify/pkg/observe"
)

// feedEntry is one synthetic message for the demo feed.
type feedEntry struct {
	level   notify.Level
	message string
}

var demoFeed = []feedEntry{
	{notify.LevelInfo, "Connected to workspace"},
	{notify.LevelDebug, "Render pass completed in 4ms"},
	{notify.LevelInfo, "Changes saved"},
	{notify.LevelWarn, "This action cannot be undone"},
	{notify.LevelError, "Failed to delete item"},
	{notify.LevelInfo, "New features available"},
	{notify.LevelWarn, "Session expires in 5 minutes"},
	{notify.LevelDebug, "Prefetched 3 routes"},
}

func runCmd() *cobra.Command {
	var (
		count       int
		interval    time.Duration
		timeout     time.Duration
		fade        time.Duration
		metricsAddr string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a synthetic notification feed",
		Long: `Run feeds synthetic leveled messages through a notification region
and prints the stacked banners as the queue changes. Each banner fades
and expires on its own timer; the demo exits once the queue drains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), count, interval, timeout, fade, metricsAddr, verbose)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "Number of notifications to emit")
	cmd.Flags().DurationVar(&interval, "interval", 700*time.Millisecond, "Delay between emissions")
	cmd.Flags().DurationVar(&timeout, "timeout", notify.DefaultTimeout, "Visible duration per notification")
	cmd.Flags().DurationVar(&fade, "fade", notify.DefaultFadeDuration, "Fade-out duration per notification")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug-level events")

	return cmd
}

func runDemo(parent context.Context, count int, interval, timeout, fade time.Duration, metricsAddr string, verbose bool) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	hooks := []notify.Hook{observe.Logging(logger)}

	var srv *http.Server
	if metricsAddr != "" {
		promReg := prometheus.NewRegistry()
		hooks = append(hooks, observe.Prometheus(observe.WithRegistry(promReg)))

		r := chi.NewRouter()
		r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		srv = &http.Server{Addr: metricsAddr, Handler: r}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
		logger.Info().Str("addr", metricsAddr).Msg("serving metrics")
	}

	loop := notify.NewLoop()
	defer loop.Close()

	region := notify.NewRegion(
		notify.WithStoreOptions(notify.WithHooks(hooks...)),
		notify.WithDefaults(
			notify.WithTimeout(timeout),
			notify.WithFadeDuration(fade),
			notify.WithScheduler(loop),
		),
	)
	defer region.Dispose()

	// Render to the terminal: reprint the stacked banners on every queue
	// change. All mutations run on the loop, so the subscriber does too.
	cancel := region.Store().Subscribe(func() {
		printStack(region)
	})
	defer cancel()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	printBanner()
	fmt.Println()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for emitted := 0; emitted < count; emitted++ {
		select {
		case <-ctx.Done():
			return shutdownMetrics(srv)
		case <-ticker.C:
			entry := demoFeed[emitted%len(demoFeed)]
			loop.Dispatch(func() {
				region.Store().Append(entry.level, entry.message)
			})
		}
	}

	// Let the remaining banners expire before exiting.
	drain := time.NewTicker(100 * time.Millisecond)
	defer drain.Stop()
	for {
		select {
		case <-ctx.Done():
			return shutdownMetrics(srv)
		case <-drain.C:
			if region.Store().Len() == 0 {
				logger.Info().Msg("queue drained")
				return shutdownMetrics(srv)
			}
		}
	}
}

// printStack renders the pending notifications as stacked banners.
func printStack(region *notify.Region) {
	logs := region.Logs()
	if len(logs) == 0 {
		fmt.Println("  (no pending notifications)")
		return
	}
	var b strings.Builder
	for _, n := range logs {
		state := "visible"
		if c := region.Controller(n.ID); c != nil {
			state = c.State().String()
		}
		fmt.Fprintf(&b, "  %s #%d %-7s %s\n", levelBadge(n.Level), n.ID, state, n.Message)
	}
	fmt.Print(b.String())
}

// levelBadge returns an ANSI-colored badge for the level.
func levelBadge(l notify.Level) string {
	switch l {
	case notify.LevelDebug:
		return "\033[90mDEBUG\033[0m"
	case notify.LevelInfo:
		return "\033[32mINFO \033[0m"
	case notify.LevelWarn:
		return "\033[33mWARN \033[0m"
	case notify.LevelError:
		return "\033[31mERROR\033[0m"
	default:
		return l.String()
	}
}

func shutdownMetrics(srv *http.Server) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
