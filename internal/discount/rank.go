package discount

import (
	"slices"
	"strings"

	"alumnirabatt/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type rankItem struct {
	brand    string
	discount models.Discount
}

// Rank orders discounts by relevance to query, in place. The sort is stable,
// so records that compare equal keep their input order.
//
// Precedence: brand prefix match, no condition, brand substring match, then
// Swedish alphabetical order when both brands contain the query.
func Rank(discounts []models.Discount, query string) {
	lower := cases.Lower(language.Swedish)
	q := lower.String(strings.TrimSpace(query))
	col := collate.New(language.Swedish)

	items := make([]rankItem, len(discounts))
	for i, d := range discounts {
		items[i] = rankItem{brand: lower.String(d.Brand), discount: d}
	}

	slices.SortStableFunc(items, func(a, b rankItem) int {
		aPrefix, bPrefix := strings.HasPrefix(a.brand, q), strings.HasPrefix(b.brand, q)
		if aPrefix != bPrefix {
			return preferFirst(aPrefix)
		}

		aCond, bCond := a.discount.Condition != nil, b.discount.Condition != nil
		if aCond != bCond {
			return preferFirst(!aCond)
		}

		aMatch, bMatch := strings.Contains(a.brand, q), strings.Contains(b.brand, q)
		if aMatch != bMatch {
			return preferFirst(aMatch)
		}
		if aMatch && bMatch {
			return col.CompareString(a.brand, b.brand)
		}
		return 0
	})

	for i := range items {
		discounts[i] = items[i].discount
	}
}

func preferFirst(first bool) int {
	if first {
		return -1
	}
	return 1
}
