// Package synth builds the directed selection graph of named proxy groups
// and the ordered rule list from classification results plus feature flags.
// Everything here is deterministic: identical inputs yield identical output.
package synth

import (
	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/classify"
	"github.com/hazicy/override-rules/internal/model"
)

// Lists are the four ordered reference lists used as group building blocks.
// Order is significant: it is the default selection priority in the client UI.
type Lists struct {
	// General is the member list of third-party service selectors and the
	// final catch-all selector.
	General []string

	// DirectFirst is the member list of first-party/OS service selectors.
	DirectFirst []string

	// Fallback is the member list of the health-checked fallback chain.
	Fallback []string

	// TopLevel is the member list of the top-level manual selector.
	TopLevel []string
}

// Qualify filters raw region counts down to the regions visible in selector
// lists. Raising threshold never adds a region a lower threshold excluded.
func Qualify(counts []classify.RegionCount, threshold int) []catalog.Region {
	out := make([]catalog.Region, 0, len(counts))
	for _, rc := range counts {
		if rc.Count >= threshold {
			out = append(out, rc.Region)
		}
	}
	return out
}

// BuildLists concatenates, in fixed precedence order, the constant anchor
// references with the qualifying region pools and the conditional cost-tier
// and landing hubs. Disabled elements are dropped, never left as gaps.
func BuildLists(regions []catalog.Region, landing, lowCost bool) Lists {
	pools := make([]string, 0, len(regions))
	for _, r := range regions {
		pools = append(pools, catalog.PoolName(r.Key))
	}

	tail := make([]string, 0, 2)
	if lowCost {
		tail = append(tail, catalog.NameLowCost)
	}
	if landing {
		tail = append(tail, catalog.NameLanding)
	}

	general := concat(
		[]string{catalog.NameSelect, catalog.NameFallback, catalog.NameManual},
		pools, tail, []string{model.PolicyDirect},
	)
	directFirst := concat(
		[]string{model.PolicyDirect, catalog.NameSelect, catalog.NameFallback, catalog.NameManual},
		pools, tail,
	)
	topLevel := concat(
		[]string{catalog.NameFallback, catalog.NameManual},
		pools, tail, []string{model.PolicyDirect},
	)

	fallback := pools
	if len(fallback) == 0 {
		fallback = []string{catalog.NameManual}
	}

	return Lists{
		General:     general,
		DirectFirst: directFirst,
		Fallback:    fallback,
		TopLevel:    topLevel,
	}
}

func concat(parts ...[]string) []string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
