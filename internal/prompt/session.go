package prompt

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/TitanInd/sprcalc/internal/estimator"
)

const (
	answerYes = "yes"
	answerNo  = "no"
	answerNA  = "n/a"
)

// Session holds the answers given at startup
type Session struct {
	Tariff     estimator.TariffConfig
	TotalWatts float64
	Interval   time.Duration

	// UseFarm is set when the miner hashrate is fetched from the farm api,
	// otherwise ManualHashrateKHS is used
	UseFarm           bool
	ManualHashrateKHS float64
}

// LoadSession asks for the tariff, power draw, polling interval and the miner hashrate source.
// The farm api is offered only when farm credentials are configured
func LoadSession(ctx context.Context, p *Prompter, hasFarmCredentials bool) (*Session, error) {
	s := &Session{}

	tariff, err := loadTariff(ctx, p)
	if err != nil {
		return nil, err
	}

	s.TotalWatts, err = p.NonNegativeFloat(ctx, "Enter total power consumption in watts: ")
	if err != nil {
		return nil, err
	}

	tariff.YearlyLimitKWh, err = p.OptionalFloat(ctx, "Enter yearly limit in kWh (if any, else enter N/A): ", answerNA, NonNegative)
	if err != nil {
		return nil, err
	}

	if tariff.HasLimit() {
		if err := loadHighRates(ctx, p, &tariff); err != nil {
			return nil, err
		}
	}
	s.Tariff = tariff

	minutes, err := p.PositiveFloat(ctx, "Enter the polling interval in minutes: ")
	if err != nil {
		return nil, err
	}
	s.Interval = time.Duration(minutes * float64(time.Minute)).Round(time.Second)
	if s.Interval < time.Second {
		s.Interval = time.Second
	}

	if hasFarmCredentials {
		answer, err := p.Choice(ctx, "Do you want to use credentials from the .env file? (yes/no): ", answerYes, answerNo)
		if err != nil {
			return nil, err
		}
		s.UseFarm = answer == answerYes
	}

	if !s.UseFarm {
		s.ManualHashrateKHS, err = p.NonNegativeFloat(ctx, "Enter your hashrate in KH/s: ")
		if err != nil {
			return nil, err
		}
	}

	if err := s.Tariff.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func loadTariff(ctx context.Context, p *Prompter) (estimator.TariffConfig, error) {
	var t estimator.TariffConfig

	tariffType, err := p.Choice(ctx, "Enter tariff type (dual/single): ", string(estimator.TariffDual), string(estimator.TariffSingle))
	if err != nil {
		return t, err
	}
	t.Type = estimator.TariffType(tariffType)

	if t.Type == estimator.TariffSingle {
		t.RateUSD, err = p.NonNegativeFloat(ctx, "Enter single tariff in USD per kWh: ")
		return t, err
	}

	if t.DayRateUSD, err = p.NonNegativeFloat(ctx, "Enter day tariff in USD per kWh: "); err != nil {
		return t, err
	}
	if t.NightRateUSD, err = p.NonNegativeFloat(ctx, "Enter night tariff in USD per kWh: "); err != nil {
		return t, err
	}
	if t.DayHours, err = p.Float(ctx, "Enter number of day hours per day: ", hoursCheck(0)); err != nil {
		return t, err
	}
	t.NightHours, err = p.Float(ctx, "Enter number of night hours per day: ", hoursCheck(t.DayHours))
	return t, err
}

func loadHighRates(ctx context.Context, p *Prompter, t *estimator.TariffConfig) error {
	var err error
	if t.Type == estimator.TariffSingle {
		t.HighRateUSD, err = p.NonNegativeFloat(ctx, "Enter high single tariff in USD per kWh (beyond limit): ")
		return err
	}

	if t.HighDayRateUSD, err = p.NonNegativeFloat(ctx, "Enter high day tariff in USD per kWh (beyond limit): "); err != nil {
		return err
	}
	t.HighNightRateUSD, err = p.NonNegativeFloat(ctx, "Enter high night tariff in USD per kWh (beyond limit): ")
	return err
}

// hoursCheck keeps the day split within 24 hours
func hoursCheck(taken float64) func(float64) string {
	return func(v float64) string {
		if v < 0 || v+taken > 24 {
			return fmt.Sprintf("Invalid input. Please enter a number between 0 and %.2f.", 24-taken)
		}
		return ""
	}
}
