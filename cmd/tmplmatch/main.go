package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/tmplmatch/config"
	"github.com/soocke/tmplmatch/decode"
	"github.com/soocke/tmplmatch/match"
	"github.com/soocke/tmplmatch/stats"
	"github.com/soocke/tmplmatch/workerpool"
)

var (
	configFile  = flag.String("config", "tmplmatch.json", "path to configuration file")
	sourcePath  = flag.String("source", "", "path to the source image")
	templateOpt = flag.String("template", "", "path to the template image")
	all         = flag.Bool("all", false, "find all matches instead of the single best")
	threshold   = flag.Float64("threshold", 0, "override the configured NCC threshold (0 keeps the config value)")
	maxCount    = flag.Int("max-count", 0, "override the configured max match count for -all (0 keeps the config value)")
	workers     = flag.Int("workers", -1, "override the configured worker count (-1 keeps the config value, 0 means hardware concurrency)")
	debug       = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	applyOverrides(cfg)

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := newLogger(level).With("call_id", uuid.NewString())

	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", *configFile, "error", err)
	}
	if err := workerpool.Configure(cfg.Workers); err != nil {
		logger.Error("worker pool configuration failed", "error", err)
		os.Exit(1)
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("application terminated with error", "error", err)
		os.Exit(1)
	}
}

func applyOverrides(cfg *config.Config) {
	if *threshold > 0 {
		cfg.Threshold = *threshold
	}
	if *maxCount > 0 {
		cfg.MaxCount = *maxCount
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	_ = cfg.Validate()
}

func run(logger *slog.Logger, cfg *config.Config) error {
	if *sourcePath == "" || *templateOpt == "" {
		return fmt.Errorf("both -source and -template are required")
	}

	source, err := decode.DecodeFile(*sourcePath)
	if err != nil {
		return err
	}
	template, err := decode.DecodeFile(*templateOpt)
	if err != nil {
		return err
	}

	start := time.Now()
	if *all {
		results, err := match.FindAll(source, template, cfg.Threshold, cfg.MaxCount)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		cs := stats.CallStats{
			SourceWidth: source.Width, SourceHeight: source.Height,
			TemplateWidth: template.Width, TemplateHeight: template.Height,
			Duration: elapsed, MatchesFound: len(results),
		}
		logger.Info("findAll complete", "stats", cs.String())
		for _, r := range results {
			fmt.Println(r.String())
		}
		return nil
	}

	result, ok, err := match.FindSingle(source, template, cfg.Threshold)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	found := 0
	if ok {
		found = 1
	}
	cs := stats.CallStats{
		SourceWidth: source.Width, SourceHeight: source.Height,
		TemplateWidth: template.Width, TemplateHeight: template.Height,
		Duration: elapsed, MatchesFound: found,
	}
	logger.Info("findSingle complete", "stats", cs.String())
	if !ok {
		fmt.Println("no match")
		return nil
	}
	fmt.Println(result.String())
	return nil
}
