// ABOUTME: Keyword extraction from free-text job descriptions
// ABOUTME: Counts lowercase words outside a fixed stopword set and keeps the most frequent
package proposals

import (
	"regexp"
	"sort"
	"strings"
)

// MaxKeywords caps how many keywords ExtractKeywords returns.
const MaxKeywords = 5

var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

var stopwords = toSet(strings.Fields(`
	the a an is are was were be been being have has had do does did will would
	could should may might must shall can need dare to of in for on with at by
	from up about into through during before after above below between under
	again further then once and but or nor so yet both either neither not only
	own same than too very just i me my we our you your he him his she her it
	its they them their what which who this that these those am looking need want
`))

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ExtractKeywords returns up to MaxKeywords words of three or more letters,
// most frequent first. Words with equal counts keep the order in which they
// first appear.
func ExtractKeywords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxKeywords {
		order = order[:MaxKeywords]
	}
	return order
}
