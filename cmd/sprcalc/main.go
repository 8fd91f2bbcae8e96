package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/TitanInd/sprcalc/internal/calculator"
	"gitlab.com/TitanInd/sprcalc/internal/config"
	"gitlab.com/TitanInd/sprcalc/internal/handlers"
	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
	"gitlab.com/TitanInd/sprcalc/internal/prompt"
	"gitlab.com/TitanInd/sprcalc/internal/report"
	"gitlab.com/TitanInd/sprcalc/internal/repositories/hiveos"
	"gitlab.com/TitanInd/sprcalc/internal/repositories/spectre"
	"golang.org/x/sync/errgroup"
)

const interruptedMsg = "Interrupted by user. Exiting gracefully."

func main() {
	os.Exit(run())
}

func run() int {
	err := config.LoadEnvFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var cfg config.Config
	err = config.LoadConfig(&cfg, &os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, err := lib.NewLogger(cfg.Log.Level, cfg.Log.Color, cfg.Log.IsProd, cfg.Log.JSON, cfg.Log.FolderPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Debugf("config: %+v", cfg.GetSanitized())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Debugf("received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("received signal: %s. Forcing exit...", s)
		fmt.Fprintln(os.Stdout, "\n"+interruptedMsg)
		os.Exit(0)
	}()

	err = start(ctx, &cfg, log)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stdout, "\n"+interruptedMsg)
		return 0
	}
	if err != nil {
		log.Errorf("exited with error: %s", err)
		return 1
	}
	return 0
}

func start(ctx context.Context, cfg *config.Config, log interfaces.ILogger) error {
	prompter := prompt.NewPrompter(os.Stdin, os.Stdout)
	session, err := prompt.LoadSession(ctx, prompter, cfg.HasFarmCredentials())
	if err != nil {
		return fmt.Errorf("startup questions: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	network, err := spectre.NewClient(cfg.Network.BaseURL, httpClient, log.Named("SPECTRE"))
	if err != nil {
		return err
	}

	var workers calculator.WorkerFetcher
	if session.UseFarm {
		workers, err = hiveos.NewClient(cfg.Farm.APIURL, cfg.Farm.APIKey, cfg.Farm.ID, cfg.Farm.Coin, httpClient, log.Named("HIVEOS"))
		if err != nil {
			return err
		}
	}

	store := calculator.NewStatusStore()
	calc := calculator.NewCalculator(
		session,
		calculator.Options{
			DailyEmission:    cfg.Reward.DailyEmission,
			LiveEmission:     cfg.Reward.LiveEmission,
			RefreshEachCycle: cfg.Farm.RefreshEachCycle,
		},
		network,
		workers,
		report.NewReporter(os.Stdout),
		report.NewProgressBar(os.Stdout),
		store,
		log.Named("CALC"),
	)

	runnables := []interfaces.Runnable{calc}
	if cfg.Web.Address != "" {
		handl := handlers.NewHTTPHandler(store, cfg.GetSanitized(), session, log.Named("HTTP"))
		runnables = append(runnables, handlers.NewServer(cfg.Web.Address, handl, log.Named("HTTP")))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range runnables {
		r := r
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}
	return err
}
