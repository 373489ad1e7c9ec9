// Package search turns a free-text query plus explicit category toggles into
// a filtered POI list. There is no backing search index: filtering re-scans
// each POI's linked K-contents, which is acceptable only for the small
// in-memory collections this site serves.
package search

import (
	"strings"

	"hantrip/models"
)

// categoryKeywords maps recognized query keywords onto categories. Both the
// hyphenated and collapsed spellings are detected.
var categoryKeywords = []struct {
	keyword  string
	category models.Category
}{
	{"k-pop", models.CategoryKpop},
	{"kpop", models.CategoryKpop},
	{"k-beauty", models.CategoryKbeauty},
	{"kbeauty", models.CategoryKbeauty},
	{"k-food", models.CategoryKfood},
	{"kfood", models.CategoryKfood},
	{"k-festival", models.CategoryKfestival},
	{"kfestival", models.CategoryKfestival},
	{"k-drama", models.CategoryKdrama},
	{"kdrama", models.CategoryKdrama},
}

// categoryLabels are the hashtag labels synchronized into the search text
// when a category is toggled.
var categoryLabels = map[models.Category]string{
	models.CategoryKpop:      "Kpop",
	models.CategoryKbeauty:   "Kbeauty",
	models.CategoryKfood:     "Kfood",
	models.CategoryKfestival: "Kfestival",
	models.CategoryKdrama:    "Kdrama",
}

// Query is a parsed raw query.
type Query struct {
	Raw        string
	Text       string
	Categories []models.Category
	Hashtags   []string
}

// Parse classifies the query token by token: category keywords (every match,
// deduplicated), hashtag-shaped tokens, and the remaining free text with
// whitespace collapsed. A keyword only counts as a whole token, so a keyword
// embedded in a longer word stays free text.
func Parse(raw string) Query {
	q := Query{Raw: raw}

	seen := make(map[models.Category]bool)
	var rest []string
	for _, tok := range strings.Fields(raw) {
		if strings.HasPrefix(tok, "#") {
			if tag := strings.TrimPrefix(tok, "#"); tag != "" {
				q.Hashtags = append(q.Hashtags, tag)
			}
			continue
		}
		if cat, ok := keywordCategory(tok); ok {
			if !seen[cat] {
				seen[cat] = true
				q.Categories = append(q.Categories, cat)
			}
			continue
		}
		rest = append(rest, tok)
	}
	q.Text = strings.Join(rest, " ")
	return q
}

func keywordCategory(token string) (models.Category, bool) {
	lower := strings.ToLower(token)
	for _, ck := range categoryKeywords {
		if lower == ck.keyword {
			return ck.category, true
		}
	}
	return "", false
}

// Filter is the full filter state the composer applies.
type Filter struct {
	Query              string
	SearchFocused      bool
	ExplicitCategories []models.Category
	SelectedHashtags   []string
}

// searchMode reports whether the search box is focused or carries text; the
// category filter only applies in search mode.
func (f Filter) searchMode() bool {
	return f.SearchFocused || strings.TrimSpace(f.Query) != ""
}

// FilterPOIs returns the POIs passing the composed filter, preserving input
// order. A POI passes iff its linked contents satisfy the free-text, hashtag,
// and category conditions.
func FilterPOIs(pois []models.POI, contents []models.KContent, f Filter) []models.POI {
	parsed := Parse(f.Query)

	categories := make(map[models.Category]bool)
	if f.searchMode() {
		for _, c := range f.ExplicitCategories {
			categories[c] = true
		}
		for _, c := range parsed.Categories {
			categories[c] = true
		}
	}

	hashtags := make(map[string]bool, len(f.SelectedHashtags))
	for _, h := range f.SelectedHashtags {
		hashtags[h] = true
	}

	byPOI := make(map[string][]models.KContent, len(contents))
	for _, c := range contents {
		byPOI[c.POIID] = append(byPOI[c.POIID], c)
	}

	text := strings.ToLower(parsed.Text)
	var out []models.POI
	for _, poi := range pois {
		linked := byPOI[poi.ID]
		if !matchesText(linked, text) {
			continue
		}
		if !matchesHashtags(linked, hashtags) {
			continue
		}
		if !matchesCategories(linked, categories) {
			continue
		}
		out = append(out, poi)
	}
	return out
}

func matchesText(linked []models.KContent, text string) bool {
	if text == "" {
		return true
	}
	for _, c := range linked {
		if strings.Contains(strings.ToLower(c.SubName.EN), text) ||
			strings.Contains(strings.ToLower(c.SubName.KO), text) {
			return true
		}
	}
	return false
}

func matchesHashtags(linked []models.KContent, hashtags map[string]bool) bool {
	if len(hashtags) == 0 {
		return true
	}
	for _, c := range linked {
		if hashtags[c.SubName.EN] || hashtags[c.SubName.KO] {
			return true
		}
	}
	return false
}

func matchesCategories(linked []models.KContent, categories map[models.Category]bool) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range linked {
		if categories[c.Category] {
			return true
		}
	}
	return false
}

// ToggleCategory flips a category in the explicit set and keeps the visible
// search text consistent by appending or removing the category's #Label
// token.
func ToggleCategory(query string, explicit []models.Category, cat models.Category) (string, []models.Category) {
	label := "#" + categoryLabels[cat]

	for i, c := range explicit {
		if c == cat {
			explicit = append(explicit[:i:i], explicit[i+1:]...)
			return removeToken(query, label), explicit
		}
	}

	explicit = append(explicit, cat)
	if strings.TrimSpace(query) == "" {
		return label, explicit
	}
	return strings.TrimSpace(query) + " " + label, explicit
}

func removeToken(query, token string) string {
	var rest []string
	for _, tok := range strings.Fields(query) {
		if strings.EqualFold(tok, token) {
			continue
		}
		rest = append(rest, tok)
	}
	return strings.Join(rest, " ")
}
