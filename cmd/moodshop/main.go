package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/moodshop/moodshop/pkg/catalog"
	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/detector"
	"github.com/moodshop/moodshop/pkg/feedback"
	"github.com/moodshop/moodshop/pkg/recommend"
	"github.com/moodshop/moodshop/pkg/spotify"
	"github.com/moodshop/moodshop/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	// load .env if present, real environment wins
	if err := godotenv.Load(); err == nil {
		log.Printf("[INFO] loaded environment from .env")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Spotify.ClientSecret, cfg.Detector.APIKey)

	log.Printf("[INFO] starting moodshop version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// loadConfig reads the config file if given, otherwise uses defaults with
// credentials from the environment. Listen flag overrides the config value.
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.Config, err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

// run wires all components and starts the server
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	store := catalog.NewStore(cfg.Storage.CatalogFile)
	store.Load()

	fbLog := feedback.NewLog(cfg.Storage.FeedbackFile)
	if err := fbLog.EnsureExists(); err != nil {
		return fmt.Errorf("init feedback log: %w", err)
	}

	ranker := recommend.NewRanker(cfg.GetVocabulary(), recommend.Params{Jitter: cfg.Recommend.Jitter})
	playlists := spotify.New(ctx, cfg.GetSpotifyConfig(), cfg.GetVocabulary())
	det := detector.New(cfg.GetDetectorConfig())

	srv := server.New(cfg, store, ranker, playlists, fbLog, det, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// mask credentials in log output
	for _, s := range secs {
		if s != "" {
			logOpts = append(logOpts, lgr.Secret(s))
		}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
