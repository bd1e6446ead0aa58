package synth

import (
	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/model"
)

// BuildRegionPools emits one pool group per detected region, in catalog
// order. Pools are load-balance when the loadbalance flag is set, url-test
// otherwise. The member filter is the region's own pattern; the exclude
// filter keeps low-cost nodes (and landing nodes, when the landing feature is
// on) out of the pool even when their names also match the region pattern.
func BuildRegionPools(regions []catalog.Region, landing, loadBalance bool, cat catalog.Catalog) []model.Group {
	exclude := cat.LowCostFilter
	if landing && cat.LandingFilter != "" {
		exclude = exclude + "|" + cat.LandingFilter
	}

	kind := model.KindURLTest
	if loadBalance {
		kind = model.KindLoadBalance
	}

	lazyOff := false
	out := make([]model.Group, 0, len(regions))
	for _, r := range regions {
		g := model.Group{
			Name:          catalog.PoolName(r.Key),
			Type:          kind,
			IncludeAll:    true,
			Filter:        r.Filter,
			ExcludeFilter: exclude,
			TestURL:       cat.HealthCheckURL,
			IntervalSec:   cat.HealthCheckIntervalSec,
			Lazy:          &lazyOff,
			Icon:          r.Icon,
		}
		if kind == model.KindURLTest {
			g.ToleranceMS = cat.HealthCheckToleranceMS
		}
		out = append(out, g)
	}
	return out
}
