package estimator

const (
	// DailyEmission approximates the amount of SPR mined by the whole network per day
	DailyEmission = 1015200

	secondsPerDay = 86400
	khsPerMHS     = 1000
)

// Portion returns the share of myHashrateKHS in the network hashrate, 0 if network hashrate is unknown
func Portion(networkHashrateMHS, myHashrateKHS float64) float64 {
	if networkHashrateMHS <= 0 {
		return 0
	}
	return (myHashrateKHS / khsPerMHS) / networkHashrateMHS
}

// LiveDailyEmission derives the network daily emission from the current block reward
func LiveDailyEmission(blockRewardPerSec float64) float64 {
	return blockRewardPerSec * secondsPerDay
}

// EstimateRewards projects the miner's share of dailyEmission over each of Periods
func EstimateRewards(networkHashrateMHS, myHashrateKHS, dailyEmission, priceUSD float64) RewardEstimate {
	portion := Portion(networkHashrateMHS, myHashrateKHS)
	daily := dailyEmission * portion

	amounts := make(map[Period]Amount, len(Periods))
	for _, p := range Periods {
		tokens := scale(p, daily)
		amounts[p] = Amount{
			Tokens: tokens,
			USD:    tokens * priceUSD,
		}
	}

	return RewardEstimate{
		Portion: portion,
		Amounts: amounts,
	}
}

// calendar approximations: a month is 30 days, a year is 365 days
func scale(p Period, daily float64) float64 {
	switch p {
	case PeriodHour:
		return daily / 24
	case PeriodDay:
		return daily
	case PeriodWeek:
		return daily * 7
	case PeriodMonth:
		return daily * 30
	case PeriodYear:
		return daily * 365
	}
	return 0
}

// Profitable reports whether the daily reward covers the daily electricity cost
func Profitable(rewards RewardEstimate, cost CostEstimate) bool {
	return rewards.Get(PeriodDay).USD >= cost.TotalUSD
}
