package calculator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/sprcalc/internal/estimator"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
	"gitlab.com/TitanInd/sprcalc/internal/prompt"
)

type networkMock struct {
	snapshot estimator.NetworkSnapshot
	calls    int
}

func (m *networkMock) GetSnapshot(ctx context.Context) estimator.NetworkSnapshot {
	m.calls++
	return m.snapshot
}

type workersMock struct {
	hashrates []float64
	calls     int
}

func (m *workersMock) GetWorkersHashrateKHS(ctx context.Context) float64 {
	hr := m.hashrates[m.calls%len(m.hashrates)]
	m.calls++
	return hr
}

type printerMock struct {
	results []*Result
}

func (m *printerMock) Print(res *Result) {
	m.results = append(m.results, res)
}

// waiterMock cancels the context after the given number of waits
type waiterMock struct {
	waits     int
	stopAfter int
	cancel    context.CancelFunc
	durations []time.Duration
}

func (m *waiterMock) Wait(ctx context.Context, d time.Duration) error {
	m.waits++
	m.durations = append(m.durations, d)
	if m.waits >= m.stopAfter {
		m.cancel()
		return ctx.Err()
	}
	return nil
}

func makeSession(useFarm bool) *prompt.Session {
	return &prompt.Session{
		Tariff: estimator.TariffConfig{
			Type:    estimator.TariffSingle,
			RateUSD: 0.12,
		},
		TotalWatts:        500,
		Interval:          time.Minute,
		UseFarm:           useFarm,
		ManualHashrateKHS: 1000,
	}
}

func TestCycleManualHashrate(t *testing.T) {
	network := &networkMock{snapshot: estimator.NetworkSnapshot{HashrateMHS: 100, BlockReward: 10, PriceUSD: 0.001}}
	calc := NewCalculator(makeSession(false), Options{}, network, nil, &printerMock{}, nil, nil, lib.NewTestLogger())

	res := calc.Cycle(context.Background())

	require.NotEmpty(t, res.ID)
	require.Equal(t, 1000.0, res.HashrateKHS)
	require.Equal(t, float64(estimator.DailyEmission), res.DailyEmission)
	require.InDelta(t, 864000.0, res.LiveDailyEmission, 1e-6)
	require.InDelta(t, 0.01, res.Rewards.Portion, 1e-12)
	require.InDelta(t, 10152.0, res.Rewards.Get(estimator.PeriodDay).Tokens, 1e-6)
	require.InDelta(t, 1.44, res.Cost.TotalUSD, 1e-9)
	require.InDelta(t, 4380.0, res.YearlyConsumptionKWh, 1e-9)
	require.False(t, res.AboveLimit)
	require.True(t, res.Profitable)
}

func TestCycleLiveEmission(t *testing.T) {
	network := &networkMock{snapshot: estimator.NetworkSnapshot{HashrateMHS: 100, BlockReward: 10, PriceUSD: 0.001}}
	calc := NewCalculator(makeSession(false), Options{LiveEmission: true}, network, nil, &printerMock{}, nil, nil, lib.NewTestLogger())

	res := calc.Cycle(context.Background())

	require.InDelta(t, 864000.0, res.DailyEmission, 1e-6)
	require.InDelta(t, 8640.0, res.Rewards.Get(estimator.PeriodDay).Tokens, 1e-6)
}

func TestCycleNetworkUnavailable(t *testing.T) {
	network := &networkMock{}
	calc := NewCalculator(makeSession(false), Options{}, network, nil, &printerMock{}, nil, nil, lib.NewTestLogger())

	res := calc.Cycle(context.Background())

	require.Zero(t, res.Rewards.Portion)
	require.Zero(t, res.Rewards.Get(estimator.PeriodYear).USD)
	require.InDelta(t, 1.44, res.Cost.TotalUSD, 1e-9)
	require.False(t, res.Profitable)
}

func TestRunFetchesFarmHashrateOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	network := &networkMock{snapshot: estimator.NetworkSnapshot{HashrateMHS: 100, PriceUSD: 1}}
	workers := &workersMock{hashrates: []float64{2000, 3000}}
	printer := &printerMock{}
	waiter := &waiterMock{stopAfter: 3, cancel: cancel}
	store := NewStatusStore()

	calc := NewCalculator(makeSession(true), Options{}, network, workers, printer, waiter, store, lib.NewTestLogger())
	err := calc.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, workers.calls)
	require.Equal(t, 3, network.calls)
	require.Len(t, printer.results, 3)
	for _, res := range printer.results {
		require.Equal(t, 2000.0, res.HashrateKHS)
	}
	require.Equal(t, []time.Duration{time.Minute, time.Minute, time.Minute}, waiter.durations)
	require.Same(t, printer.results[2], store.Last())
	require.NotEqual(t, printer.results[0].ID, printer.results[1].ID)
}

func TestRunRefreshesFarmHashrate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers := &workersMock{hashrates: []float64{2000, 3000}}
	printer := &printerMock{}
	waiter := &waiterMock{stopAfter: 2, cancel: cancel}

	calc := NewCalculator(makeSession(true), Options{RefreshEachCycle: true}, &networkMock{}, workers, printer, waiter, nil, lib.NewTestLogger())
	_ = calc.Run(ctx)

	require.Equal(t, 2, workers.calls)
	require.Equal(t, 2000.0, printer.results[0].HashrateKHS)
	require.Equal(t, 3000.0, printer.results[1].HashrateKHS)
	require.Equal(t, 3000.0, calc.HashrateKHS())
}

func TestRunCancelledBeforeFirstReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	printer := &printerMock{}
	calc := NewCalculator(makeSession(false), Options{}, &networkMock{}, nil, printer, &waiterMock{stopAfter: 1, cancel: cancel}, nil, lib.NewTestLogger())

	err := calc.Run(ctx)

	require.True(t, errors.Is(err, context.Canceled))
	require.Empty(t, printer.results)
}

func TestStatusStoreEmpty(t *testing.T) {
	require.Nil(t, NewStatusStore().Last())
}

func TestCycleWarnsOnceAboutEmissionDivergence(t *testing.T) {
	logs := new(bytes.Buffer)
	log, err := lib.NewLoggerMemory("debug", logs)
	require.NoError(t, err)

	// live emission 864000 is ~15% below the default one
	network := &networkMock{snapshot: estimator.NetworkSnapshot{HashrateMHS: 100, BlockReward: 10, PriceUSD: 0.001}}
	calc := NewCalculator(makeSession(false), Options{}, network, nil, &printerMock{}, nil, nil, log)

	calc.Cycle(context.Background())
	calc.Cycle(context.Background())

	require.Equal(t, 1, strings.Count(logs.String(), "differs from the live one"))
}
