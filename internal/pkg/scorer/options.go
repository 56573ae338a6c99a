package scorer

import (
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
)

var ErrInvalidOptions = errors.New("invalid scorer options")

type WeightScheme string

const (
	// TwoFactor маршрут 50 и вместимость/класс 50, дата и тип транспорта только для справки.
	TwoFactor WeightScheme = "two_factor"
	// FourFactor маршрут 40, вместимость 30, дата 20, тип транспорта 10.
	FourFactor WeightScheme = "four_factor"
)

func (s WeightScheme) String() string {
	return string(s)
}

type CapacityPolicy string

const (
	// Utilization оценивает загрузку рейса: вес груза / свободная вместимость.
	Utilization CapacityPolicy = "utilization"
	// CarrierClass сравнивает класс груза с классом транспорта рейса.
	CarrierClass CapacityPolicy = "carrier_class"
)

func (p CapacityPolicy) String() string {
	return string(p)
}

// Weights веса факторов, в сумме всегда 100.
type Weights struct {
	Route    int
	Capacity int
	Date     int
	Vehicle  int
}

func (w Weights) sum() int {
	return w.Route + w.Capacity + w.Date + w.Vehicle
}

func (s WeightScheme) Weights() (Weights, error) {
	switch s {
	case TwoFactor:
		return Weights{Route: 50, Capacity: 50}, nil
	case FourFactor:
		return Weights{Route: 40, Capacity: 30, Date: 20, Vehicle: 10}, nil
	default:
		return Weights{}, fmt.Errorf("%w: unknown weight scheme %q", ErrInvalidOptions, s)
	}
}

// DefaultThreshold порог выше максимума, который пара может набрать без совпадения маршрута
// в строгом режиме.
func (s WeightScheme) DefaultThreshold() int {
	switch s {
	case FourFactor:
		return 70
	default:
		return 60
	}
}

type Options struct {
	Scheme         WeightScheme
	CapacityPolicy CapacityPolicy
	// StrictRouteMatching: если хотя бы одно плечо ниже strictLegThreshold,
	// маршрут получает strictRouteFloor вместо среднего по плечам.
	StrictRouteMatching bool
	// nil - порог по умолчанию для схемы, 0 принимает любую пару.
	AcceptanceThreshold *int
	// Пустое значение заменяется на DefaultTierBreakpoints.
	TierBreakpoints TierBreakpoints
}

func DefaultOptions() Options {
	return Options{
		Scheme:              TwoFactor,
		CapacityPolicy:      CarrierClass,
		StrictRouteMatching: true,
		AcceptanceThreshold: pointer.To(TwoFactor.DefaultThreshold()),
		TierBreakpoints:     DefaultTierBreakpoints(),
	}
}

func (o Options) withDefaults() Options {
	if o.AcceptanceThreshold == nil {
		o.AcceptanceThreshold = pointer.To(o.Scheme.DefaultThreshold())
	}
	if o.TierBreakpoints == (TierBreakpoints{}) {
		o.TierBreakpoints = DefaultTierBreakpoints()
	}
	return o
}

func (o Options) validate() error {
	switch o.CapacityPolicy {
	case Utilization, CarrierClass:
	default:
		return fmt.Errorf("%w: unknown capacity policy %q", ErrInvalidOptions, o.CapacityPolicy)
	}

	if threshold := pointer.Get(o.AcceptanceThreshold); threshold < 0 || threshold > maxScore {
		return fmt.Errorf("%w: acceptance threshold %d out of [0, %d]", ErrInvalidOptions, threshold, maxScore)
	}

	if err := o.TierBreakpoints.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}
