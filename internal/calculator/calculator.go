package calculator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gitlab.com/TitanInd/sprcalc/internal/estimator"
	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
	"gitlab.com/TitanInd/sprcalc/internal/prompt"
	"go.uber.org/atomic"
)

type NetworkFetcher interface {
	GetSnapshot(ctx context.Context) estimator.NetworkSnapshot
}

type WorkerFetcher interface {
	GetWorkersHashrateKHS(ctx context.Context) float64
}

type Printer interface {
	Print(res *Result)
}

type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

type ResultStore interface {
	Store(res *Result)
}

// relative difference between configured and live emission reported once
const emissionDivergenceThreshold = 0.1

type Options struct {
	DailyEmission    float64 // used unless LiveEmission is set
	LiveEmission     bool    // derive daily emission from the fetched block reward
	RefreshEachCycle bool    // re-fetch farm hashrate on every cycle
}

// Calculator alternates between fetching and estimating (a cycle) and waiting for the next one
type Calculator struct {
	// config
	session *prompt.Session
	opts    Options

	// state
	hashrateKHS        atomic.Float64
	hashrateResolved   atomic.Bool
	divergenceReported atomic.Bool

	// deps
	network NetworkFetcher
	workers WorkerFetcher // nil if the hashrate is entered manually
	printer Printer
	waiter  Waiter
	store   ResultStore // optional
	log     interfaces.ILogger
}

func NewCalculator(session *prompt.Session, opts Options, network NetworkFetcher, workers WorkerFetcher, printer Printer, waiter Waiter, store ResultStore, log interfaces.ILogger) *Calculator {
	if opts.DailyEmission == 0 {
		opts.DailyEmission = estimator.DailyEmission
	}
	c := &Calculator{
		session: session,
		opts:    opts,
		network: network,
		workers: workers,
		printer: printer,
		waiter:  waiter,
		store:   store,
		log:     log,
	}
	if !session.UseFarm || workers == nil {
		c.workers = nil
		c.hashrateKHS.Store(session.ManualHashrateKHS)
		c.hashrateResolved.Store(true)
	}
	return c
}

// Run repeats cycles until ctx is cancelled, it never returns nil
func (c *Calculator) Run(ctx context.Context) error {
	c.log.Infof("polling every %s", c.session.Interval)

	for {
		res := c.Cycle(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.printer.Print(res)
		if c.store != nil {
			c.store.Store(res)
		}

		err := c.waiter.Wait(ctx, c.session.Interval)
		if err != nil {
			return err
		}
	}
}

// Cycle fetches the current readings and computes estimates. Failed readings are zeroes
func (c *Calculator) Cycle(ctx context.Context) *Result {
	id := uuid.NewString()
	log := c.log.With("cycle", id)

	hashrateKHS := c.minerHashrate(ctx)
	network := c.network.GetSnapshot(ctx)
	log.Debugf("network hashrate %.2f MH/s, block reward %.4f, price %.6f USD", network.HashrateMHS, network.BlockReward, network.PriceUSD)

	liveEmission := estimator.LiveDailyEmission(network.BlockReward)
	dailyEmission := c.opts.DailyEmission
	if c.opts.LiveEmission {
		dailyEmission = liveEmission
	} else if liveEmission > 0 && !lib.AlmostEqual(dailyEmission, liveEmission, emissionDivergenceThreshold) {
		if c.divergenceReported.CompareAndSwap(false, true) {
			log.Warnf("configured daily emission %.0f SPR differs from the live one %.0f SPR, estimates use the configured value", dailyEmission, liveEmission)
		}
	}

	rewards := estimator.EstimateRewards(network.HashrateMHS, hashrateKHS, dailyEmission, network.PriceUSD)

	watts := c.session.TotalWatts
	tariff := c.session.Tariff
	aboveLimit := estimator.AboveLimit(watts, tariff.YearlyLimitKWh)
	cost := estimator.EstimateCost(watts, aboveLimit, tariff)

	res := &Result{
		ID:                   id,
		ComputedAt:           time.Now(),
		Network:              network,
		LiveDailyEmission:    liveEmission,
		DailyEmission:        dailyEmission,
		HashrateKHS:          hashrateKHS,
		Rewards:              rewards,
		TotalWatts:           watts,
		Tariff:               tariff,
		Cost:                 cost,
		YearlyConsumptionKWh: estimator.YearlyConsumptionKWh(watts),
		AboveLimit:           aboveLimit,
		Profitable:           estimator.Profitable(rewards, cost),
	}

	log.Debugf("daily reward %.4f USD, daily cost %.4f USD", rewards.Get(estimator.PeriodDay).USD, cost.TotalUSD)
	return res
}

// HashrateKHS returns the last known miner hashrate
func (c *Calculator) HashrateKHS() float64 {
	return c.hashrateKHS.Load()
}

func (c *Calculator) minerHashrate(ctx context.Context) float64 {
	if c.workers == nil {
		return c.hashrateKHS.Load()
	}
	if c.hashrateResolved.Load() && !c.opts.RefreshEachCycle {
		return c.hashrateKHS.Load()
	}

	hr := c.workers.GetWorkersHashrateKHS(ctx)
	if ctx.Err() == nil {
		c.hashrateKHS.Store(hr)
		c.hashrateResolved.Store(true)
		c.log.Infof("farm hashrate: %.2f KH/s", hr)
	}
	return hr
}
