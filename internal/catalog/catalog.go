// Package catalog holds the static configuration data consumed by the
// override pipeline: the ordered region table, exclusion patterns, service
// categories, rule providers and the base rule list. None of it is logic;
// it is passed explicitly into the classifier and the group assembler so the
// pipeline stays pure and testable against a substituted catalog.
package catalog

import "github.com/hazicy/override-rules/internal/model"

// Hub and terminal group names. Groups reference each other by these names,
// so they are part of the static naming scheme rather than synthesis logic.
const (
	NameSelect   = "节点选择"
	NameManual   = "手动切换"
	NameFallback = "故障转移"
	NameLowCost  = "低倍率节点"
	NameLanding  = "落地节点"
	NameFront    = "前置代理"
	NameFinal    = "漏网之鱼"
	NameGlobal   = "GLOBAL"
)

// Region is one entry of the ordered region table. Filter is an RE2 pattern
// matched against proxy display names; it is also emitted verbatim as the
// region pool's filter so the client and the classifier agree on membership.
type Region struct {
	Key    string
	Filter string
	Icon   string
}

// Service is a traffic category that gets its own selector group.
type Service struct {
	Name string
	Icon string

	// DirectFirst selects the direct-preferring member list (first-party /
	// OS services); otherwise the general list is used.
	DirectFirst bool

	// PreferredRegions, when every named region pool exists, bypasses the
	// default lists: the selector references those pools directly.
	PreferredRegions []string
}

// RuleProvider is the remote rule-set source table entry, emitted verbatim
// under "rule-providers".
type RuleProvider struct {
	Type     string `yaml:"type"`
	Behavior string `yaml:"behavior"`
	URL      string `yaml:"url"`
	Format   string `yaml:"format"`
	Interval int    `yaml:"interval"`
}

type Catalog struct {
	// Regions is an explicit total order: the classifier's first-match-wins
	// precedence is exactly this slice order.
	Regions []Region

	// LandingFilter matches residential/ISP/satellite egress nodes, which are
	// excluded from regional classification and standard pools.
	LandingFilter string

	// LowCostFilter matches low-cost/trial nodes (fractional multiplier
	// notation or the usual keywords).
	LowCostFilter string

	Services []Service

	RuleProviders map[string]RuleProvider
	BaseRules     []model.Rule

	// Health-check policy for url-test/fallback/load-balance pools.
	HealthCheckURL         string
	HealthCheckIntervalSec int
	HealthCheckToleranceMS int
}

// PoolName returns the group name of a region pool, e.g. "香港" → "香港节点".
func PoolName(regionKey string) string { return regionKey + "节点" }

// HubIcon returns the icon URL for a non-region hub group.
func HubIcon(name string) string { return iconBase + name + ".png" }

// Default returns the built-in catalog. The returned value is fresh on every
// call; callers may tweak it freely (tests do).
func Default() Catalog {
	return Catalog{
		Regions:       regionTable(),
		LandingFilter: `家宽|家庭宽带|商宽|星链|落地|(?i:isp|starlink|residential)`,
		LowCostFilter: `0\.[0-9]+|低倍率|省流|大流量|实验`,
		Services:      serviceTable(),

		RuleProviders: ruleProviderTable(),
		BaseRules:     baseRuleTable(),

		HealthCheckURL:         "https://cp.cloudflare.com/generate_204",
		HealthCheckIntervalSec: 300,
		HealthCheckToleranceMS: 20,
	}
}
