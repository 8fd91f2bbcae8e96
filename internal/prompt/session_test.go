package prompt

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/sprcalc/internal/estimator"
)

func TestLoadSessionDualWithLimit(t *testing.T) {
	input := strings.Join([]string{
		"dual",
		"0.10",  // day
		"0.05",  // night
		"16",    // day hours
		"10",    // too many night hours
		"8",     // night hours
		"1500",  // watts
		"10000", // limit
		"0.30",  // high day
		"0.20",  // high night
		"0.5",   // interval minutes
		"yes",
	}, "\n") + "\n"
	p := NewPrompter(strings.NewReader(input), io.Discard)

	s, err := LoadSession(context.Background(), p, true)
	require.NoError(t, err)

	require.Equal(t, estimator.TariffDual, s.Tariff.Type)
	require.Equal(t, 0.10, s.Tariff.DayRateUSD)
	require.Equal(t, 0.05, s.Tariff.NightRateUSD)
	require.Equal(t, 16.0, s.Tariff.DayHours)
	require.Equal(t, 8.0, s.Tariff.NightHours)
	require.Equal(t, 0.30, s.Tariff.HighDayRateUSD)
	require.Equal(t, 0.20, s.Tariff.HighNightRateUSD)
	require.NotNil(t, s.Tariff.YearlyLimitKWh)
	require.Equal(t, 10000.0, *s.Tariff.YearlyLimitKWh)
	require.Equal(t, 1500.0, s.TotalWatts)
	require.Equal(t, 30*time.Second, s.Interval)
	require.True(t, s.UseFarm)
}

func TestLoadSessionSingleWithoutLimit(t *testing.T) {
	input := "single\n0.12\n500\nn/a\n5\n3300\n"
	p := NewPrompter(strings.NewReader(input), io.Discard)

	s, err := LoadSession(context.Background(), p, false)
	require.NoError(t, err)

	require.Equal(t, estimator.TariffSingle, s.Tariff.Type)
	require.Equal(t, 0.12, s.Tariff.RateUSD)
	require.Nil(t, s.Tariff.YearlyLimitKWh)
	require.Zero(t, s.Tariff.HighRateUSD)
	require.Equal(t, 5*time.Minute, s.Interval)
	require.False(t, s.UseFarm)
	require.Equal(t, 3300.0, s.ManualHashrateKHS)
}

func TestLoadSessionZeroLimitSkipsHighRates(t *testing.T) {
	input := "single\n0.12\n500\n0\n1\nno\n100\n"
	p := NewPrompter(strings.NewReader(input), io.Discard)

	s, err := LoadSession(context.Background(), p, true)
	require.NoError(t, err)

	require.NotNil(t, s.Tariff.YearlyLimitKWh)
	require.Zero(t, *s.Tariff.YearlyLimitKWh)
	require.False(t, s.UseFarm)
	require.Equal(t, 100.0, s.ManualHashrateKHS)
}

func TestLoadSessionTruncatedInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("single\n0.12\n"), io.Discard)

	_, err := LoadSession(context.Background(), p, false)
	require.ErrorIs(t, err, io.EOF)
}
