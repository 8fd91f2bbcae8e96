package calculator

import (
	"time"

	"gitlab.com/TitanInd/sprcalc/internal/estimator"
)

// Result is everything computed during a single polling cycle
type Result struct {
	ID         string
	ComputedAt time.Time

	Network           estimator.NetworkSnapshot
	LiveDailyEmission float64 // derived from the current block reward
	DailyEmission     float64 // used by the reward estimate
	HashrateKHS       float64
	Rewards           estimator.RewardEstimate

	TotalWatts           float64
	Tariff               estimator.TariffConfig
	Cost                 estimator.CostEstimate
	YearlyConsumptionKWh float64
	AboveLimit           bool
	Profitable           bool
}
