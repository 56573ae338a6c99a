package scorer

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

type city struct {
	canonical string
	synonyms  []string
}

// справочник городов: каноническое имя и его написания
var cityTable = []city{
	{"الرياض", []string{"الرياض", "riyadh", "ar riyadh"}},
	{"جدة", []string{"جدة", "jeddah", "jiddah", "jedda"}},
	{"مكة", []string{"مكة", "مكة المكرمة", "mecca", "makkah"}},
	{"المدينة", []string{"المدينة", "المدينة المنورة", "medina", "madinah"}},
	{"الدمام", []string{"الدمام", "dammam"}},
	{"الخبر", []string{"الخبر", "khobar", "al khobar"}},
	{"الظهران", []string{"الظهران", "dhahran"}},
	{"الخرج", []string{"الخرج", "kharj", "al kharj"}},
	{"أبها", []string{"أبها", "abha"}},
	{"تبوك", []string{"تبوك", "tabuk"}},
	{"القصيم", []string{"القصيم", "بريدة", "عنيزة", "qassim", "buraidah", "unaizah"}},
	{"حائل", []string{"حائل", "hail"}},
	{"جازان", []string{"جازان", "jazan", "jizan", "gizan"}},
	{"نجران", []string{"نجران", "najran"}},
	{"الباحة", []string{"الباحة", "al baha", "baha"}},
	{"عرعر", []string{"عرعر", "arar"}},
	{"سكاكا", []string{"سكاكا", "sakaka"}},
}

// соседние города одной агломерации
var metroClusters = [][]string{
	{"الرياض", "الخرج"},
	{"الدمام", "الخبر", "الظهران"},
}

type cityName struct {
	words     []string
	canonical string
}

type cityIndex struct {
	// первое слово написания -> написания, длинные первыми
	byFirstWord map[string][]cityName
	adjacent    map[string]map[string]struct{}
}

var cities = buildCityIndex(cityTable, metroClusters)

func buildCityIndex(table []city, clusters [][]string) *cityIndex {
	idx := &cityIndex{
		byFirstWord: make(map[string][]cityName),
		adjacent:    make(map[string]map[string]struct{}),
	}

	seen := make(map[string]struct{})
	for _, c := range table {
		for _, synonym := range c.synonyms {
			name := normalizeLocation(synonym)
			if _, exists := seen[name]; exists || name == "" {
				continue
			}
			seen[name] = struct{}{}

			words := strings.Fields(name)
			idx.byFirstWord[words[0]] = append(idx.byFirstWord[words[0]], cityName{
				words:     words,
				canonical: c.canonical,
			})
		}
	}

	for first := range idx.byFirstWord {
		sort.SliceStable(idx.byFirstWord[first], func(i, j int) bool {
			return len(idx.byFirstWord[first][i].words) > len(idx.byFirstWord[first][j].words)
		})
	}

	for _, cluster := range clusters {
		for _, a := range cluster {
			for _, b := range cluster {
				if a == b {
					continue
				}
				if idx.adjacent[a] == nil {
					idx.adjacent[a] = make(map[string]struct{})
				}
				idx.adjacent[a][b] = struct{}{}
			}
		}
	}

	return idx
}

// resolve первый слева распознанный город. location должен быть уже нормализован.
func (c *cityIndex) resolve(location string) (string, bool) {
	found := c.resolveAll(location)
	if len(found) == 0 {
		return "", false
	}
	return found[0], true
}

// resolveAll все города, упомянутые в location целыми словами, в порядке появления, без повторов.
// В одной позиции выигрывает самое длинное написание.
func (c *cityIndex) resolveAll(location string) []string {
	words := strings.Fields(location)

	var found []string
	for i := 0; i < len(words); {
		name, ok := c.matchAt(words, i)
		if !ok {
			i++
			continue
		}
		if !slices.Contains(found, name.canonical) {
			found = append(found, name.canonical)
		}
		i += len(name.words)
	}
	return found
}

func (c *cityIndex) matchAt(words []string, i int) (cityName, bool) {
	for _, first := range wordForms(words[i]) {
		for _, name := range c.byFirstWord[first] {
			if i+len(name.words) > len(words) {
				continue
			}
			if slices.Equal(name.words[1:], words[i+1:i+len(name.words)]) {
				return name, true
			}
		}
	}
	return cityName{}, false
}

// wordForms слово как есть и без приклеенного предлога или союза: بالرياض, والدمام, للرياض.
func wordForms(word string) []string {
	forms := []string{word}

	if rest, ok := strings.CutPrefix(word, "لل"); ok && utf8.RuneCountInString(rest) >= 2 {
		forms = append(forms, "ال"+rest)
	}
	r, size := utf8.DecodeRuneInString(word)
	switch r {
	case 'ب', 'و', 'ل', 'ف', 'ك':
		if rest := word[size:]; utf8.RuneCountInString(rest) >= 3 {
			forms = append(forms, rest)
		}
	}
	return forms
}

func (c *cityIndex) isAdjacent(a, b string) bool {
	_, ok := c.adjacent[a][b]
	return ok
}
