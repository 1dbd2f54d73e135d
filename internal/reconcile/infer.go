package reconcile

import (
	"strings"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// categoryRule maps title keywords to a category. Rules are evaluated in
// order; the first rule with any matching keyword wins.
type categoryRule struct {
	category domain.Category
	keywords []string
}

// inferenceRules is the single, ordered keyword table used everywhere a stop
// title needs a category. Keep all call sites on InferCategory so the
// heuristic cannot drift between them.
var inferenceRules = []categoryRule{
	{domain.CategoryHistory, []string{"fort", "palace", "museum", "jantar", "hawa", "mahal", "kund"}},
	{domain.CategoryShopping, []string{"market", "bazaar", "mall", "shopping", "tower"}},
	{domain.CategoryNature, []string{"garden", "park", "circle", "bagh"}},
	{domain.CategoryCulture, []string{"temple", "gate", "galta", "dhani"}},
	{domain.CategoryFood, []string{"dinner", "lunch", "restaurant", "cafe", "chowk", "tapri", "food"}},
}

// InferCategory guesses a category from a stop title by keyword matching.
// It is a heuristic for titles that carry no explicit category and is not
// guaranteed correct for novel titles; unmatched titles fall back to the
// generic "popular" catch-all.
func InferCategory(title string) domain.Category {
	t := strings.ToLower(title)
	for _, rule := range inferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryPopular
}
