package estimator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
)

type TariffType string

const (
	TariffDual   TariffType = "dual"
	TariffSingle TariffType = "single"
)

var ErrTariffInvalid = errors.New("invalid tariff")

// TariffConfig is set once at startup and never changed afterwards.
// Dual tariff uses Day*/Night* fields, single tariff uses Rate fields
type TariffConfig struct {
	Type TariffType `validate:"oneof=dual single"`

	DayRateUSD       float64 `validate:"gte=0"`
	NightRateUSD     float64 `validate:"gte=0"`
	DayHours         float64 `validate:"gte=0,lte=24"`
	NightHours       float64 `validate:"gte=0,lte=24"`
	HighDayRateUSD   float64 `validate:"gte=0"`
	HighNightRateUSD float64 `validate:"gte=0"`

	RateUSD     float64 `validate:"gte=0"`
	HighRateUSD float64 `validate:"gte=0"`

	// nil if there is no yearly consumption cap
	YearlyLimitKWh *float64 `validate:"omitempty,gte=0"`
}

func (t TariffConfig) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return lib.WrapError(ErrTariffInvalid, err)
	}
	if t.Type == TariffDual && t.DayHours+t.NightHours > 24 {
		return lib.WrapError(ErrTariffInvalid, fmt.Errorf("day and night hours sum up to %.2f, more than 24", t.DayHours+t.NightHours))
	}
	return nil
}

// HasLimit reports whether a positive yearly cap is set, so penalty rates apply
func (t TariffConfig) HasLimit() bool {
	return t.YearlyLimitKWh != nil && *t.YearlyLimitKWh > 0
}
