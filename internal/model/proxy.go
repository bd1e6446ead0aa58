package model

// Proxy is one entry of the input document's "proxies" list. The override
// pipeline only inspects the display name; every other field is opaque and is
// carried through to the output untouched.
type Proxy map[string]any

// Name returns the proxy's display name. A missing or non-text name yields
// the empty string, which matches no region or cost pattern.
func (p Proxy) Name() string {
	name, _ := p["name"].(string)
	return name
}
