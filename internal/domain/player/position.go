package player

import "strings"

var shortCodeCategories = map[string]Category{
	"GK": CategoryGoalkeeper,
	"DF": CategoryDefender,
	"MF": CategoryMidfielder,
	"FW": CategoryForward,
}

var categoryShortCodes = map[Category]string{
	CategoryGoalkeeper: "GK",
	CategoryDefender:   "DF",
	CategoryMidfielder: "MF",
	CategoryForward:    "FW",
}

// Checked in order, first hit wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryGoalkeeper, []string{"goalkeeper"}},
	{CategoryDefender, []string{"defender", "back"}},
	{CategoryMidfielder, []string{"midfielder"}},
	{CategoryForward, []string{"forward", "striker", "wing"}},
}

// ClassifyPosition maps a raw position label ("DF,MF", "Centre-Back", "Left Wing")
// to its category. Unmatched labels resolve to CategoryUnknown.
func ClassifyPosition(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryUnknown
	}

	if tokens := positionTokens(trimmed); len(tokens) > 0 {
		if category, ok := shortCodeCategories[tokens[0]]; ok {
			return category
		}
	}

	lower := strings.ToLower(trimmed)
	for _, item := range categoryKeywords {
		for _, keyword := range item.keywords {
			if strings.Contains(lower, keyword) {
				return item.category
			}
		}
	}

	return CategoryUnknown
}

// ParseCategory accepts category names ("defender") as well as free-text labels.
func ParseCategory(raw string) Category {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch Category(value) {
	case CategoryGoalkeeper, CategoryDefender, CategoryMidfielder, CategoryForward:
		return Category(value)
	}
	return ClassifyPosition(raw)
}

// ShortCode returns the FBref style code for a category, empty for unknown.
func (c Category) ShortCode() string {
	return categoryShortCodes[c]
}

// MatchesPositionFilter reports whether a stored position satisfies a user filter.
// Filters may be short codes (GK/DF/MF/FW) or full names, and stored positions
// may be comma-joined multi-position codes.
func MatchesPositionFilter(raw, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "ALL") {
		return true
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	if strings.Contains(strings.ToLower(raw), strings.ToLower(filter)) {
		return true
	}

	wantCode := strings.ToUpper(filter)
	if _, ok := shortCodeCategories[wantCode]; !ok {
		wantCode = ClassifyPosition(filter).ShortCode()
	}
	if wantCode == "" {
		return false
	}

	for _, token := range positionTokens(raw) {
		if token == wantCode {
			return true
		}
	}

	return ClassifyPosition(raw).ShortCode() == wantCode
}

func positionTokens(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToUpper(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}
