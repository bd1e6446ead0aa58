// Package classify infers region and cost-tier membership from proxy display
// names. It is a pure function over its inputs: the same proxy list and
// catalog always produce the same counts.
package classify

import (
	"regexp"

	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/model"
)

// RegionCount reports how many proxies matched one region. Regions with zero
// matches are omitted from classification output.
type RegionCount struct {
	Region catalog.Region
	Count  int
}

// Classify scans every proxy name against the catalog.
//
// A name matching the ISP/landing exclusion pattern contributes to no region,
// regardless of region-pattern matches. Otherwise the first matching region
// in catalog order wins: one proxy contributes to at most one region. The
// low-cost predicate is independent of regional exclusion and is evaluated
// over the whole set.
//
// Counts are raw and threshold-unfiltered; selector visibility is decided
// later by the list builder. A pattern that fails to compile matches nothing.
func Classify(proxies []model.Proxy, cat catalog.Catalog) (counts []RegionCount, lowCost bool) {
	landing := compile(cat.LandingFilter)
	cheap := compile(cat.LowCostFilter)

	regionRes := make([]*regexp.Regexp, len(cat.Regions))
	for i, region := range cat.Regions {
		regionRes[i] = compile(region.Filter)
	}

	tally := make([]int, len(cat.Regions))
	for _, p := range proxies {
		name := p.Name()
		if name == "" {
			continue
		}
		if cheap != nil && cheap.MatchString(name) {
			lowCost = true
		}
		if landing != nil && landing.MatchString(name) {
			continue
		}
		for i, re := range regionRes {
			if re != nil && re.MatchString(name) {
				tally[i]++
				break
			}
		}
	}

	for i, region := range cat.Regions {
		if tally[i] >= 1 {
			counts = append(counts, RegionCount{Region: region, Count: tally[i]})
		}
	}
	return counts, lowCost
}

func compile(pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		// Stale catalog data degrades to "matches nothing" instead of failing
		// the whole run.
		return nil
	}
	return re
}
