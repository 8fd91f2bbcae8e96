package handlers

import (
	"time"

	"gitlab.com/TitanInd/sprcalc/internal/calculator"
	"gitlab.com/TitanInd/sprcalc/internal/estimator"
	"gitlab.com/TitanInd/sprcalc/internal/prompt"
)

type EstimateResponse struct {
	ID         string
	ComputedAt string

	NetworkHashrateMHS float64
	BlockReward        float64
	PriceUSD           float64
	LiveDailyEmission  float64
	DailyEmission      float64

	HashrateKHS float64
	Portion     float64
	Rewards     []RewardItem

	TotalWatts           float64
	DailyCostUSD         float64
	DayRateUSD           float64
	NightRateUSD         float64
	YearlyConsumptionKWh float64
	YearlyLimitKWh       *float64
	AboveLimit           bool
	Profitable           bool
}

type RewardItem struct {
	Period string
	SPR    float64
	USD    float64
}

type ConfigResponse struct {
	Config  interface{}
	Session SessionItem
}

type SessionItem struct {
	TariffType        string
	Tariff            estimator.TariffConfig
	TotalWatts        float64
	IntervalSeconds   int
	UseFarm           bool
	ManualHashrateKHS float64 `json:",omitempty"`
}

func mapEstimate(res *calculator.Result) EstimateResponse {
	rewards := make([]RewardItem, 0, len(estimator.Periods))
	for _, p := range estimator.Periods {
		a := res.Rewards.Get(p)
		rewards = append(rewards, RewardItem{Period: string(p), SPR: a.Tokens, USD: a.USD})
	}

	return EstimateResponse{
		ID:                   res.ID,
		ComputedAt:           res.ComputedAt.Format(time.RFC3339),
		NetworkHashrateMHS:   res.Network.HashrateMHS,
		BlockReward:          res.Network.BlockReward,
		PriceUSD:             res.Network.PriceUSD,
		LiveDailyEmission:    res.LiveDailyEmission,
		DailyEmission:        res.DailyEmission,
		HashrateKHS:          res.HashrateKHS,
		Portion:              res.Rewards.Portion,
		Rewards:              rewards,
		TotalWatts:           res.TotalWatts,
		DailyCostUSD:         res.Cost.TotalUSD,
		DayRateUSD:           res.Cost.DayRateUSD,
		NightRateUSD:         res.Cost.NightRateUSD,
		YearlyConsumptionKWh: res.YearlyConsumptionKWh,
		YearlyLimitKWh:       res.Tariff.YearlyLimitKWh,
		AboveLimit:           res.AboveLimit,
		Profitable:           res.Profitable,
	}
}

func mapSession(s *prompt.Session) SessionItem {
	return SessionItem{
		TariffType:        string(s.Tariff.Type),
		Tariff:            s.Tariff,
		TotalWatts:        s.TotalWatts,
		IntervalSeconds:   int(s.Interval.Seconds()),
		UseFarm:           s.UseFarm,
		ManualHashrateKHS: s.ManualHashrateKHS,
	}
}
