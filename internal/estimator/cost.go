package estimator

const hoursPerYear = 24 * 365

func kilowatts(watts float64) float64 {
	return watts / 1000
}

// YearlyConsumptionKWh extrapolates the constant power draw to a whole year
func YearlyConsumptionKWh(totalWatts float64) float64 {
	return kilowatts(totalWatts) * hoursPerYear
}

// AboveLimit reports whether the yearly consumption exceeds the cap. Reaching the cap exactly is not above it
func AboveLimit(totalWatts float64, yearlyLimitKWh *float64) bool {
	if yearlyLimitKWh == nil {
		return false
	}
	return YearlyConsumptionKWh(totalWatts) > *yearlyLimitKWh
}

// EstimateCost returns the daily electricity cost of the constant power draw
func EstimateCost(totalWatts float64, aboveLimit bool, tariff TariffConfig) CostEstimate {
	kw := kilowatts(totalWatts)

	if tariff.Type == TariffDual {
		dayRate := applicableRate(tariff.DayRateUSD, tariff.HighDayRateUSD, aboveLimit)
		nightRate := applicableRate(tariff.NightRateUSD, tariff.HighNightRateUSD, aboveLimit)

		dayKWh := kw * tariff.DayHours
		nightKWh := kw * tariff.NightHours
		dayCost := dayKWh * dayRate
		nightCost := nightKWh * nightRate

		return CostEstimate{
			TotalUSD:     dayCost + nightCost,
			DayRateUSD:   dayRate,
			NightRateUSD: nightRate,
			DayKWh:       dayKWh,
			NightKWh:     nightKWh,
			DayCostUSD:   dayCost,
			NightCostUSD: nightCost,
		}
	}

	rate := applicableRate(tariff.RateUSD, tariff.HighRateUSD, aboveLimit)
	totalKWh := kw * 24
	total := totalKWh * rate

	return CostEstimate{
		TotalUSD:     total,
		DayRateUSD:   rate,
		NightRateUSD: rate,
		DayKWh:       totalKWh,
		DayCostUSD:   total,
	}
}

// unset penalty rate falls back to the normal one
func applicableRate(normal, high float64, aboveLimit bool) float64 {
	if aboveLimit && high > 0 {
		return high
	}
	return normal
}
