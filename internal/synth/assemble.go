package synth

import (
	"fmt"

	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/classify"
	"github.com/hazicy/override-rules/internal/model"
	"github.com/hazicy/override-rules/internal/options"
)

// BuildError reports a defect in group-graph construction (e.g. a circular
// selection dependency). It never occurs with the built-in catalog; it exists
// so a broken catalog fails loudly instead of emitting a config the client
// would reject.
type BuildError struct {
	AppError model.AppError
	Cause    error
}

func (e *BuildError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *BuildError) Unwrap() error { return e.Cause }

// Inputs carries everything one assembly run depends on. All fields are
// read-only to the assembler.
type Inputs struct {
	Catalog catalog.Catalog

	// Counts are the raw classification results (every region with >= 1
	// match, catalog order). Pools are built for all of them; selector
	// visibility additionally honors Flags.Threshold.
	Counts  []classify.RegionCount
	LowCost bool

	Flags options.Flags
}

// Assemble builds the full ordered group set: the top-level selector, the
// manual and fallback hubs, per-service selectors, the conditional cost-tier
// and landing hubs (plus the front-proxy hub that breaks the landing cycle),
// the region pools, the final catch-all selector, and last a synthesized
// GLOBAL group referencing every other group by name.
func Assemble(in Inputs) ([]model.Group, error) {
	cat := in.Catalog
	visible := Qualify(in.Counts, in.Flags.Threshold)
	lists := BuildLists(visible, in.Flags.Landing, in.LowCost)

	detected := make([]catalog.Region, 0, len(in.Counts))
	detectedPools := make(map[string]bool, len(in.Counts))
	for _, rc := range in.Counts {
		detected = append(detected, rc.Region)
		detectedPools[catalog.PoolName(rc.Region.Key)] = true
	}

	lazyOff := false
	groups := make([]model.Group, 0, len(cat.Services)+len(detected)+8)

	groups = append(groups, model.Group{
		Name:    catalog.NameSelect,
		Type:    model.KindSelect,
		Members: lists.TopLevel,
		Icon:    catalog.HubIcon("Proxy"),
	})
	groups = append(groups, model.Group{
		Name:       catalog.NameManual,
		Type:       model.KindSelect,
		IncludeAll: true,
		Icon:       catalog.HubIcon("Static"),
	})
	groups = append(groups, model.Group{
		Name:        catalog.NameFallback,
		Type:        model.KindFallback,
		Members:     lists.Fallback,
		TestURL:     cat.HealthCheckURL,
		IntervalSec: cat.HealthCheckIntervalSec,
		Lazy:        &lazyOff,
		Icon:        catalog.HubIcon("Available"),
	})

	for _, svc := range cat.Services {
		groups = append(groups, model.Group{
			Name:    svc.Name,
			Type:    model.KindSelect,
			Members: serviceMembers(svc, lists, detectedPools),
			Icon:    svc.Icon,
		})
	}

	if in.LowCost {
		exclude := ""
		if in.Flags.Landing {
			exclude = cat.LandingFilter
		}
		groups = append(groups, model.Group{
			Name:          catalog.NameLowCost,
			Type:          model.KindURLTest,
			IncludeAll:    true,
			Filter:        cat.LowCostFilter,
			ExcludeFilter: exclude,
			TestURL:       cat.HealthCheckURL,
			IntervalSec:   cat.HealthCheckIntervalSec,
			ToleranceMS:   cat.HealthCheckToleranceMS,
			Lazy:          &lazyOff,
			Icon:          catalog.HubIcon("Lab"),
		})
	}

	if in.Flags.Landing {
		groups = append(groups, model.Group{
			Name:        catalog.NameLanding,
			Type:        model.KindURLTest,
			IncludeAll:  true,
			Filter:      cat.LandingFilter,
			TestURL:     cat.HealthCheckURL,
			IntervalSec: cat.HealthCheckIntervalSec,
			ToleranceMS: cat.HealthCheckToleranceMS,
			Lazy:        &lazyOff,
			DialerProxy: catalog.NameFront,
			Icon:        catalog.HubIcon("Server"),
		})
		// The front proxy reuses the top-level list minus the landing hub and
		// the fallback hub. Without the removal those three groups would form
		// a reference cycle through the top-level selector.
		groups = append(groups, model.Group{
			Name:    catalog.NameFront,
			Type:    model.KindSelect,
			Members: without(lists.TopLevel, catalog.NameLanding, catalog.NameFallback),
			Icon:    catalog.HubIcon("Airport"),
		})
	}

	groups = append(groups, BuildRegionPools(detected, in.Flags.Landing, in.Flags.LoadBalance, cat)...)

	groups = append(groups, model.Group{
		Name:    catalog.NameFinal,
		Type:    model.KindSelect,
		Members: lists.General,
		Icon:    catalog.HubIcon("Final"),
	})

	// GLOBAL is a complete forward reference: built last, once every other
	// name is final.
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	groups = append(groups, model.Group{
		Name:    catalog.NameGlobal,
		Type:    model.KindSelect,
		Members: names,
		Icon:    catalog.HubIcon("Global"),
	})

	if err := validateAcyclic(groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// serviceMembers picks a category's member list. Categories with a regional
// preference reference the region pools directly when every preferred pool
// exists; otherwise the posture default applies.
func serviceMembers(svc catalog.Service, lists Lists, detectedPools map[string]bool) []string {
	if len(svc.PreferredRegions) > 0 {
		pools := make([]string, 0, len(svc.PreferredRegions))
		for _, key := range svc.PreferredRegions {
			pools = append(pools, catalog.PoolName(key))
		}
		all := true
		for _, p := range pools {
			if !detectedPools[p] {
				all = false
				break
			}
		}
		if all {
			return concat(pools, []string{catalog.NameSelect, model.PolicyDirect})
		}
	}
	if svc.DirectFirst {
		return lists.DirectFirst
	}
	return lists.General
}

func without(list []string, drop ...string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		skip := false
		for _, d := range drop {
			if s == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, s)
		}
	}
	return out
}
