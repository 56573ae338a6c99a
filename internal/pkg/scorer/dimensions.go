package scorer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dimensionNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

	easternDigits = strings.NewReplacer(
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
		"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
		"٫", ".",
	)
)

// ParseDimensions возвращает объем в м³ из строки вида "120x80x100".
// Единицы по суффиксу mm, cm или m, по умолчанию сантиметры.
// Все, что не похоже на три размера, дает 0.
func ParseDimensions(dimensions string) float64 {
	s := strings.ToLower(strings.TrimSpace(easternDigits.Replace(dimensions)))
	if s == "" {
		return 0
	}

	numbers := dimensionNumber.FindAllString(s, -1)
	if len(numbers) != 3 {
		return 0
	}

	toMeters := 0.01
	switch {
	case strings.HasSuffix(s, "mm"):
		toMeters = 0.001
	case strings.HasSuffix(s, "cm"):
		toMeters = 0.01
	case strings.HasSuffix(s, "m"):
		toMeters = 1
	}

	volume := 1.0
	for _, n := range numbers {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil || v <= 0 {
			return 0
		}
		volume *= v * toMeters
	}
	return volume
}
