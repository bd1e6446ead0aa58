package model

// Group kinds understood by the routing client.
const (
	KindSelect      = "select"
	KindURLTest     = "url-test"
	KindLoadBalance = "load-balance"
	KindFallback    = "fallback"
)

// Terminal policies. They are valid member references but never groups.
const (
	PolicyDirect = "DIRECT"
	PolicyReject = "REJECT"
)

type Group struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // select | url-test | load-balance | fallback

	// Members holds proxy names, group names, DIRECT or REJECT. A group built
	// from a name filter leaves Members empty and sets IncludeAll+Filter.
	Members []string `yaml:"proxies,omitempty"`

	IncludeAll    bool   `yaml:"include-all,omitempty"`
	Filter        string `yaml:"filter,omitempty"`
	ExcludeFilter string `yaml:"exclude-filter,omitempty"`

	// Health-check fields, meaningful when Type != select.
	TestURL     string `yaml:"url,omitempty"`
	IntervalSec int    `yaml:"interval,omitempty"`
	ToleranceMS int    `yaml:"tolerance,omitempty"`
	// Lazy is emitted explicitly as false for pools: the client's default is
	// lazy=true and pools are required to stay always active.
	Lazy *bool `yaml:"lazy,omitempty"`

	// DialerProxy chains this group's egress through another group.
	DialerProxy string `yaml:"dialer-proxy,omitempty"`

	Icon string `yaml:"icon,omitempty"`
}

// Refs returns every other name this group depends on for selection: its
// member list plus the dialer-proxy target, in that order.
func (g Group) Refs() []string {
	refs := make([]string, 0, len(g.Members)+1)
	refs = append(refs, g.Members...)
	if g.DialerProxy != "" {
		refs = append(refs, g.DialerProxy)
	}
	return refs
}
