package cookbook

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortDateDesc SortKey = "date-desc"
	SortDateAsc  SortKey = "date-asc"
	SortTimeAsc  SortKey = "time-asc"
)

// Query describes one pass over the collection. All predicates are
// ANDed; zero values match everything. An unrecognized sort key leaves
// the input order untouched.
type Query struct {
	Search        string
	Tag           string
	FavoritesOnly bool
	Sort          SortKey
}

var firstIntRe = regexp.MustCompile(`\d+`)

// Filter returns the recipes matching q, ordered by q.Sort. The source
// slice is never mutated.
func Filter(recipes []Recipe, q Query) []Recipe {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	tag := strings.ToLower(strings.TrimSpace(q.Tag))

	filtered := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if search != "" && !strings.Contains(searchableText(r), search) {
			continue
		}
		if tag != "" && !hasTag(r, tag) {
			continue
		}
		if q.FavoritesOnly && !r.Favorite {
			continue
		}
		filtered = append(filtered, r)
	}

	sortRecipes(filtered, q.Sort)
	return filtered
}

// searchableText flattens a recipe into one lowercase haystack:
// title, description, tags, ingredient names, and instruction text.
func searchableText(r Recipe) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteByte(' ')
	sb.WriteString(r.Description)
	for _, t := range r.Tags {
		sb.WriteByte(' ')
		sb.WriteString(t)
	}
	for _, g := range r.Ingredients {
		for _, item := range g.Items {
			sb.WriteByte(' ')
			sb.WriteString(item.Name)
		}
	}
	for _, step := range r.Instructions {
		sb.WriteByte(' ')
		sb.WriteString(step.Title)
		sb.WriteByte(' ')
		sb.WriteString(step.Body)
	}
	return strings.ToLower(sb.String())
}

func hasTag(r Recipe, tag string) bool {
	for _, t := range r.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

func sortRecipes(recipes []Recipe, key SortKey) {
	switch key {
	case SortNameAsc, SortNameDesc:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(recipes, func(i, j int) bool {
			cmp := coll.CompareString(recipes[i].Title, recipes[j].Title)
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortDateDesc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Created > recipes[j].Created
		})
	case SortDateAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Created < recipes[j].Created
		})
	case SortTimeAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return totalMinutes(recipes[i]) < totalMinutes(recipes[j])
		})
	}
	// Unknown key: keep input order.
}

// totalMinutes extracts the first integer from the total-time text.
// Untimed recipes sort last.
func totalMinutes(r Recipe) float64 {
	m := firstIntRe.FindString(r.TotalTime)
	if m == "" {
		return math.Inf(1)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return math.Inf(1)
	}
	return float64(n)
}
