package scorer

import (
	"errors"
	"strings"
)

// CarrierTier класс размера груза или транспорта. Порядок значений важен:
// транспорт может везти груз, если его класс не ниже требуемого.
type CarrierTier int

const (
	TierUnknown CarrierTier = iota
	TierDocument
	TierSmall
	TierMedium
	TierHeavy
)

func (t CarrierTier) String() string {
	switch t {
	case TierDocument:
		return "document"
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

var vehicleTiers = map[string]CarrierTier{
	"document":   TierDocument,
	"individual": TierDocument,
	"personal":   TierDocument,
	"walker":     TierDocument,
	"on_foot":    TierDocument,
	"bicycle":    TierDocument,
	"bike":       TierDocument,
	"motorcycle": TierDocument,
	"motorbike":  TierDocument,
	"scooter":    TierDocument,
	"car":        TierDocument,
	"sedan":      TierDocument,
	"suv":        TierDocument,

	"small":          TierSmall,
	"pickup":         TierSmall,
	"van":            TierSmall,
	"minivan":        TierSmall,
	"small_truck":    TierSmall,
	"delivery_truck": TierSmall,

	"medium":    TierMedium,
	"truck":     TierMedium,
	"box_truck": TierMedium,
	"lorry":     TierMedium,

	"heavy":        TierHeavy,
	"heavy_truck":  TierHeavy,
	"trailer":      TierHeavy,
	"semi_trailer": TierHeavy,
	"flatbed":      TierHeavy,
	"fleet":        TierHeavy,
}

// TierForVehicle переводит свободный тег транспорта в класс.
// "any", пустой и незнакомый тег дают TierUnknown.
func TierForVehicle(vehicleType string) CarrierTier {
	return vehicleTiers[normalizeVehicleTag(vehicleType)]
}

// TierBreakpoints нижние границы классов груза, не включительно: вес > HeavyKg значит heavy.
type TierBreakpoints struct {
	SmallKg  float64
	MediumKg float64
	HeavyKg  float64
	SmallM3  float64
	MediumM3 float64
	HeavyM3  float64
}

func DefaultTierBreakpoints() TierBreakpoints {
	return TierBreakpoints{
		SmallKg:  500,
		MediumKg: 3500,
		HeavyKg:  26000,
		SmallM3:  2,
		MediumM3: 20,
		HeavyM3:  90,
	}
}

func (b TierBreakpoints) validate() error {
	if b.SmallKg < 0 || b.SmallM3 < 0 {
		return errors.New("tier breakpoints must be non-negative")
	}
	if !(b.SmallKg < b.MediumKg && b.MediumKg < b.HeavyKg) {
		return errors.New("weight breakpoints must be strictly increasing")
	}
	if !(b.SmallM3 < b.MediumM3 && b.MediumM3 < b.HeavyM3) {
		return errors.New("volume breakpoints must be strictly increasing")
	}
	return nil
}

// Classify класс груза по весу или объему, что даст больший класс.
func (b TierBreakpoints) Classify(weightKg, volumeM3 float64) CarrierTier {
	weightKg, volumeM3 = nonNegative(weightKg), nonNegative(volumeM3)

	switch {
	case weightKg > b.HeavyKg || volumeM3 > b.HeavyM3:
		return TierHeavy
	case weightKg > b.MediumKg || volumeM3 > b.MediumM3:
		return TierMedium
	case weightKg > b.SmallKg || volumeM3 > b.SmallM3:
		return TierSmall
	default:
		return TierDocument
	}
}

func normalizeVehicleTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return strings.Join(strings.FieldsFunc(tag, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}
