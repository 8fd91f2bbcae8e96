package report

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/TitanInd/sprcalc/internal/calculator"
	"gitlab.com/TitanInd/sprcalc/internal/estimator"
)

var periodTitles = map[estimator.Period]string{
	estimator.PeriodHour:  "Hour",
	estimator.PeriodDay:   "Day",
	estimator.PeriodWeek:  "Week",
	estimator.PeriodMonth: "Month",
	estimator.PeriodYear:  "Year",
}

// Reporter prints human readable cycle results
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Print(res *calculator.Result) {
	b := new(strings.Builder)

	fmt.Fprintf(b, "\nCurrent Network Hashrate: %.2f MH/s\n", res.Network.HashrateMHS)
	fmt.Fprintf(b, "Total Network SPR Mined per Day: %.2f\n", res.LiveDailyEmission)
	fmt.Fprintf(b, "Current Blockreward: %.2f SPR\n", res.Network.BlockReward)
	fmt.Fprintf(b, "Current Price (USD per SPR): $%.4f\n", res.Network.PriceUSD)
	fmt.Fprintf(b, "Your Portion of the Network Hashrate: (%.3f%%)\n", res.Rewards.Portion*100)
	fmt.Fprintf(b, "Your Current Hashrate: %.2f KH/s\n", res.HashrateKHS)

	fmt.Fprintf(b, "\nEstimated Mining Rewards:\n")
	for _, p := range estimator.Periods {
		a := res.Rewards.Get(p)
		fmt.Fprintf(b, "%s: %.2f SPR ($%.2f)\n", periodTitles[p], a.Tokens, a.USD)
	}

	fmt.Fprintf(b, "\nTotal Power Consumption: %.2f W\n", res.TotalWatts)
	fmt.Fprintf(b, "Electricity Cost (Daily): $%.2f per day\n", res.Cost.TotalUSD)
	if res.Tariff.Type == estimator.TariffDual {
		fmt.Fprintf(b, "Electricity Cost per kWh (Day Tariff): $%.2f\n", res.Cost.DayRateUSD)
		fmt.Fprintf(b, "Electricity Cost per kWh (Night Tariff): $%.2f\n", res.Cost.NightRateUSD)
	} else {
		fmt.Fprintf(b, "Electricity Cost per kWh (Single Tariff): $%.2f\n", res.Cost.DayRateUSD)
	}

	fmt.Fprintf(b, "\nYearly Energy Consumption: %.2f kWh\n", res.YearlyConsumptionKWh)
	if limit := res.Tariff.YearlyLimitKWh; limit != nil {
		fmt.Fprintf(b, "Yearly Limit: %.2f kWh\n", *limit)
		if res.AboveLimit {
			fmt.Fprintf(b, "Exceeding Yearly Limit by: %.2f kWh\n", res.YearlyConsumptionKWh-*limit)
		} else {
			fmt.Fprintf(b, "Under Yearly Limit by: %.2f kWh\n", *limit-res.YearlyConsumptionKWh)
		}
	}

	if res.Profitable {
		fmt.Fprintln(b, "Mining is profitable.")
	} else if res.AboveLimit {
		fmt.Fprintln(b, "Mining is not profitable with the increased tariffs.")
	} else {
		fmt.Fprintln(b, "Mining is not profitable.")
	}

	_, _ = io.WriteString(r.out, b.String())
}
