package estimator

// NetworkSnapshot is a single reading of the network statistics, every field is non-negative
type NetworkSnapshot struct {
	HashrateMHS float64 // network hashrate, MH/s
	BlockReward float64 // SPR per second
	PriceUSD    float64 // USD per SPR
}

type Period string

const (
	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods lists the reward horizons in display order
var Periods = []Period{PeriodHour, PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

type Amount struct {
	Tokens float64
	USD    float64
}

type RewardEstimate struct {
	Portion float64 // share of the network hashrate, 0..1
	Amounts map[Period]Amount
}

func (r RewardEstimate) Get(p Period) Amount {
	return r.Amounts[p]
}

type CostEstimate struct {
	TotalUSD     float64 // per day
	DayRateUSD   float64 // effective per kWh
	NightRateUSD float64 // effective per kWh, equals DayRateUSD for single tariff
	DayKWh       float64
	NightKWh     float64
	DayCostUSD   float64
	NightCostUSD float64
}
