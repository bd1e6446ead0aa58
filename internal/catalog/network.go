package catalog

// The functions below return fresh values on every call so that one synthesis
// run can never leak mutations into the next.

// DNSConfig returns one of the two preconfigured DNS variants. fakeIP selects
// the fake-ip enhanced mode; ipv6 is wired through to the resolver.
func DNSConfig(fakeIP, ipv6 bool) map[string]any {
	dns := map[string]any{
		"enable":        true,
		"listen":        ":1053",
		"ipv6":          ipv6,
		"prefer-h3":     true,
		"respect-rules": true,
		"nameserver": []any{
			"https://223.5.5.5/dns-query",
			"https://120.53.53.53/dns-query",
		},
		"proxy-server-nameserver": []any{
			"https://223.5.5.5/dns-query",
		},
		"nameserver-policy": map[string]any{
			"geosite:cn": []any{"https://223.5.5.5/dns-query"},
		},
	}
	if fakeIP {
		dns["enhanced-mode"] = "fake-ip"
		dns["fake-ip-range"] = "198.18.0.1/16"
		dns["fake-ip-filter"] = []any{
			"geosite:private",
			"geosite:cn",
			"geosite:connectivity-check",
			"*.lan",
			"*.local",
		}
	} else {
		dns["enhanced-mode"] = "redir-host"
	}
	return dns
}

// SnifferConfig returns the protocol sniffing settings.
func SnifferConfig() map[string]any {
	return map[string]any{
		"enable":               true,
		"force-dns-mapping":    true,
		"parse-pure-ip":        true,
		"override-destination": false,
		"sniff": map[string]any{
			"HTTP": map[string]any{"ports": []any{80, "8080-8880"}},
			"TLS":  map[string]any{"ports": []any{443, 8443}},
			"QUIC": map[string]any{"ports": []any{443, 8443}},
		},
		"skip-domain": []any{
			"Mijia Cloud",
			"+.push.apple.com",
		},
	}
}

// GeoXURLs returns the geodata download table.
func GeoXURLs() map[string]any {
	return map[string]any{
		"geoip":   "https://raw.githubusercontent.com/MetaCubeX/meta-rules-dat/release/geoip.dat",
		"geosite": "https://raw.githubusercontent.com/MetaCubeX/meta-rules-dat/release/geosite.dat",
		"mmdb":    "https://raw.githubusercontent.com/MetaCubeX/meta-rules-dat/release/country.mmdb",
	}
}

// FullPatch returns the daemon/network settings merged in when the full
// option is set: inbound ports, log level and controller bind address.
func FullPatch() map[string]any {
	return map[string]any{
		"mixed-port":          7890,
		"allow-lan":           true,
		"bind-address":        "*",
		"mode":                "rule",
		"log-level":           "info",
		"external-controller": "127.0.0.1:9090",
		"unified-delay":       true,
		"tcp-concurrent":      true,
	}
}

// KeepAlivePatch returns the TCP keep-alive knobs merged in when the
// keepalive option is set.
func KeepAlivePatch() map[string]any {
	return map[string]any{
		"keep-alive-interval": 15,
		"keep-alive-idle":     600,
		"disable-keep-alive":  false,
	}
}
