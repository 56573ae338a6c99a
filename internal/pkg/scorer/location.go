package scorer

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	similarityExact     = 1.0
	similarityAdjacent  = 0.9
	similaritySubstring = 0.6
	similarityKnown     = 0.3
)

const tatweel = 'ـ'

var arabicLetterFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ٱ", "ا",
	"ة", "ه",
	"ى", "ي",
)

// LocationSimilarity сравнивает две локации в свободной форме, результат в [0, 1].
// Функция симметрична.
func LocationSimilarity(a, b string) float64 {
	na, nb := normalizeLocation(a), normalizeLocation(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return similarityExact
	}

	// адрес может упоминать несколько городов: "الرياض المدينة الصناعية"
	citiesA, citiesB := cities.resolveAll(na), cities.resolveAll(nb)
	for _, a := range citiesA {
		if slices.Contains(citiesB, a) {
			return similarityExact
		}
	}
	for _, a := range citiesA {
		for _, b := range citiesB {
			if cities.isAdjacent(a, b) {
				return similarityAdjacent
			}
		}
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return similaritySubstring
	}

	if len(citiesA) > 0 && len(citiesB) > 0 {
		return similarityKnown
	}
	return 0
}

// ResolveCity возвращает каноническое имя города, если локация распознана.
func ResolveCity(location string) (string, bool) {
	return cities.resolve(normalizeLocation(location))
}

func normalizeLocation(s string) string {
	s = cases.Fold().String(norm.NFKC.String(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r), r == tatweel:
			// огласовки и растяжка
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(arabicLetterFolds.Replace(b.String())), " ")
}
