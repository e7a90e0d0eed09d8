package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/onair/internal/config"
	"github.com/five82/onair/internal/display"
	"github.com/five82/onair/internal/display/term"
	"github.com/five82/onair/internal/logging"
	"github.com/five82/onair/internal/scheduler"
	"github.com/five82/onair/internal/twitch"
	"github.com/five82/onair/internal/watchdog"
)

// Status lines shown on the boot screen.
const (
	StatusStarting   = "Starting!"
	StatusGetToken   = "Get Token"
	StatusTokenError = "Token error"
	StatusGetStatus  = "Get status"
)

const defaultTokenErrorHold = 30 * time.Second

// Options configure the onair application.
type Options struct {
	ConfigPath string
	// Headless logs to stderr instead of drawing the matrix in the terminal.
	Headless bool

	// The fields below replace collaborators in tests.
	Renderer       display.Renderer
	Clock          clockwork.Clock
	HTTPClient     *http.Client
	TokenErrorHold time.Duration
	// OnWatchdog runs when the loop stops feeding the watchdog. Nil logs and
	// exits the process so a supervisor can restart it.
	OnWatchdog func()
}

// Run boots onair and runs the poll loop until ctx is cancelled. A token
// failure is shown on the display, held, and returned.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var console io.Writer
	if opts.Headless {
		console = os.Stderr
	}
	logs, err := logging.Setup(logging.Options{
		File:           cfg.LogFile,
		UTCOffsetHours: cfg.TimezoneOffset,
		Debug:          cfg.Debug,
		Console:        console,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logs.Close()

	err = start(ctx, cfg, opts)
	if err != nil && opts.Renderer == nil && !opts.Headless {
		printRecent(os.Stderr, cfg.LogFile)
	}
	return err
}

// recentLines of the log are echoed to stderr after a fatal error when the
// terminal screen was in use.
const recentLines = 10

func printRecent(w io.Writer, path string) {
	lines, err := logging.Tail(path, recentLines)
	if err != nil || len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "last %d lines of %s:\n", len(lines), path)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func start(ctx context.Context, cfg config.Config, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := opts.Renderer
	if renderer == nil {
		if opts.Headless {
			renderer = term.NewHeadless()
		} else {
			screen := term.Open(cancel)
			defer screen.Close()
			renderer = screen
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	var liveness display.Liveness
	var dog *watchdog.Watchdog
	if cfg.UseWatchdog {
		onExpire := opts.OnWatchdog
		if onExpire == nil {
			onExpire = func() { log.Fatal().Msg("main loop stalled, exiting") }
		}
		dog = watchdog.New(clock, cfg.WatchdogTimeout, onExpire)
		liveness = dog
	}

	machine := display.New(display.Options{
		Renderer: renderer,
		Clock:    clock,
		Liveness: liveness,
		Dwell:    cfg.NowLiveDelay,
	})
	machine.ShowStatus(StatusStarting)
	log.Info().Strs("channels", cfg.Channels).Bool("watchdog", cfg.UseWatchdog).Msg("onair starting")

	client, err := twitch.NewClient(twitch.Options{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		AuthURL:      cfg.AuthURL,
		StreamsURL:   cfg.StreamsURL,
		HTTPClient:   opts.HTTPClient,
	})
	if err != nil {
		return fmt.Errorf("init twitch client: %w", err)
	}

	machine.ShowStatus(StatusGetToken)
	token, err := client.Authenticate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not get access token")
		machine.ShowStatus(StatusTokenError)
		hold := opts.TokenErrorHold
		if hold <= 0 {
			hold = defaultTokenErrorHold
		}
		select {
		case <-ctx.Done():
		case <-clock.After(hold):
		}
		return fmt.Errorf("authenticate: %w", err)
	}

	machine.ShowStatus(StatusGetStatus)
	sched := scheduler.New(scheduler.Options{
		Client:      client,
		Token:       token,
		Channels:    cfg.Channels,
		Machine:     machine,
		Clock:       clock,
		Liveness:    liveness,
		UpdateDelay: cfg.UpdateDelay,
		ScrollDelay: cfg.ScrollDelay,
		Zone:        logging.Zone(cfg.TimezoneOffset),
	})

	if dog != nil {
		dog.Start()
		defer dog.Stop()
	}

	_ = sched.Poll(ctx)
	return sched.Run(ctx)
}
