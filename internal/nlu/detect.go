package nlu

import (
	"strconv"
	"strings"

	"restaurant-order-agent/internal/model"
)

// Detectors below operate on normalized text (catalog.Normalize output).
// Each one is a small named function so it can be unit-tested on its own.

const (
	minQty = 1
	maxQty = 49
)

var spelledNumbers = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
}

// DetectQuantity returns the first standalone integer token in 1..49,
// falling back to spelled-out one/two/three, then to 1.
func DetectQuantity(norm string) int {
	for _, tok := range strings.Fields(norm) {
		if n, err := strconv.Atoi(tok); err == nil {
			if n >= minQty && n <= maxQty {
				return n
			}
			continue
		}
		if n, ok := spelledNumbers[tok]; ok {
			return n
		}
	}
	return 1
}

// sizeKeywords in priority order: large before medium before small so a
// longer mention cannot be shadowed by a partial overlap.
var sizeKeywords = []struct {
	word string
	size model.Size
}{
	{"large", model.SizeLarge},
	{"medium", model.SizeMedium},
	{"small", model.SizeSmall},
}

// DetectSize returns the mentioned pizza size, or "" when none is found or
// the store does not support it.
func DetectSize(norm string, settings model.StoreSettings) model.Size {
	for _, kw := range sizeKeywords {
		if containsWord(norm, kw.word) {
			if settings.SupportsSize(kw.size) {
				return kw.size
			}
			return ""
		}
	}
	return ""
}

var spiceGroups = []struct {
	level model.SpiceLevel
	words []string
}{
	{model.SpiceMild, []string{"mild"}},
	{model.SpiceMedium, []string{"medium"}},
	{model.SpiceHot, []string{"hot", "spicy"}},
}

// DetectSpice scans for mild/medium/hot mentions. When more than one
// distinct level is mentioned it reports ambiguity instead of guessing;
// silently picking one of several levels is disallowed.
func DetectSpice(norm string) (level model.SpiceLevel, ambiguous bool) {
	var hits []model.SpiceLevel
	for _, g := range spiceGroups {
		for _, w := range g.words {
			if containsWord(norm, w) {
				hits = append(hits, g.level)
				break
			}
		}
	}

	switch len(hits) {
	case 0:
		return "", false
	case 1:
		return hits[0], false
	default:
		return "", true
	}
}

// DetectOrderType recognizes pickup/delivery statements.
func DetectOrderType(norm string) model.OrderType {
	switch {
	case containsWord(norm, "delivery") || containsWord(norm, "deliver") || containsWord(norm, "delivered"):
		return model.OrderDelivery
	case containsWord(norm, "pickup") || containsWord(norm, "pick") || containsWord(norm, "carryout") || containsWord(norm, "takeout"):
		return model.OrderPickup
	}
	return ""
}

var streetWords = []string{
	"st", "street", "ave", "avenue", "rd", "road", "dr", "drive",
	"ln", "lane", "blvd", "boulevard", "way", "ct", "court", "circle",
	"pl", "place", "apt", "unit", "suite",
}

// LooksLikeAddress is the plausibility heuristic for delivery addresses:
// the utterance must contain both a number and a street-type word.
func LooksLikeAddress(norm string) bool {
	hasNumber := false
	for _, tok := range strings.Fields(norm) {
		if _, err := strconv.Atoi(tok); err == nil {
			hasNumber = true
			break
		}
	}
	if !hasNumber {
		return false
	}

	for _, w := range streetWords {
		if containsWord(norm, w) {
			return true
		}
	}
	return false
}

// DetectWingType matches one of the entry's configured wing types
// (e.g. boneless, traditional) in the utterance.
func DetectWingType(norm string, types []string) string {
	for _, t := range types {
		if containsWord(norm, t) {
			return t
		}
	}
	return ""
}

// DetectWingFlavor matches one of the entry's configured flavors. Flavors
// may be multi-word ("lemon pepper"), so substring matching is used.
func DetectWingFlavor(norm string, flavors []string) string {
	for _, f := range flavors {
		if strings.Contains(norm, f) {
			return f
		}
	}
	return ""
}

// containsWord reports whether phrase occurs in norm on token boundaries.
// Both arguments must already be normalized.
func containsWord(norm, phrase string) bool {
	return strings.Contains(" "+norm+" ", " "+phrase+" ")
}
