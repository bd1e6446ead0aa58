package override

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/options"
)

const sampleConfig = `
port: 7890
proxies:
  - name: "HK-01 香港"
    type: ss
    server: hk.example.com
    port: 8388
    cipher: aes-128-gcm
    password: secret
  - name: "US-01 美国"
    type: vmess
    server: us.example.com
    port: 443
  - name: "US-02 低倍率 美国"
    type: trojan
    server: us2.example.com
    port: 443
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(sampleConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(Proxies(doc)) != 3 {
		t.Fatalf("proxies=%d, want=3", len(Proxies(doc)))
	}

	if _, err := ParseDocument(": not yaml ["); err == nil {
		t.Fatalf("malformed YAML must fail")
	}

	doc, err = ParseDocument("")
	if err != nil || doc == nil {
		t.Fatalf("empty input must yield an empty document, got doc=%v err=%v", doc, err)
	}
}

func TestApply_InjectsAllSections(t *testing.T) {
	doc, err := ParseDocument(sampleConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Apply(doc, options.Flags{}, catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"proxy-groups", "rules", "rule-providers", "sniffer", "dns", "ipv6", "geodata-mode", "geox-url"} {
		if _, ok := out[key]; !ok {
			t.Fatalf("output missing %q", key)
		}
	}

	// Proxies pass through untouched, extra fields included.
	if !reflect.DeepEqual(out["proxies"], doc["proxies"]) {
		t.Fatalf("proxies were modified")
	}
	if out["port"] != 7890 {
		t.Fatalf("unrecognized keys must be preserved, port=%v", out["port"])
	}

	// Input document must not be mutated.
	if _, ok := doc["proxy-groups"]; ok {
		t.Fatalf("input document mutated")
	}

	rules := out["rules"].([]string)
	if rules[0] != "AND,((NETWORK,UDP),(DST-PORT,443)),REJECT" {
		t.Fatalf("rules[0]=%q, want the UDP/443 reject prefix", rules[0])
	}
	if rules[len(rules)-1] != "MATCH,"+catalog.NameFinal {
		t.Fatalf("last rule=%q, want the MATCH terminal", rules[len(rules)-1])
	}
}

func TestApply_FlagVariants(t *testing.T) {
	doc, err := ParseDocument(sampleConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := catalog.Default()

	out, err := Apply(doc, options.Flags{QUIC: true, FakeIP: true, IPv6: true, Full: true, KeepAlive: true}, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rules := out["rules"].([]string)
	for _, r := range rules {
		if r == "AND,((NETWORK,UDP),(DST-PORT,443)),REJECT" {
			t.Fatalf("quic=true must not block UDP/443")
		}
	}

	dns := out["dns"].(map[string]any)
	if dns["enhanced-mode"] != "fake-ip" {
		t.Fatalf("dns enhanced-mode=%v, want fake-ip", dns["enhanced-mode"])
	}
	if dns["ipv6"] != true {
		t.Fatalf("dns ipv6=%v, want true", dns["ipv6"])
	}

	if out["mixed-port"] != 7890 || out["external-controller"] == nil {
		t.Fatalf("full=true must merge daemon settings")
	}
	if out["keep-alive-interval"] == nil {
		t.Fatalf("keepalive=true must merge keep-alive settings")
	}

	// Standard DNS variant without the flags.
	out, err = Apply(doc, options.Flags{}, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dns = out["dns"].(map[string]any)
	if dns["enhanced-mode"] != "redir-host" {
		t.Fatalf("dns enhanced-mode=%v, want redir-host", dns["enhanced-mode"])
	}
	if _, ok := out["mixed-port"]; ok {
		t.Fatalf("full=false must not merge daemon settings")
	}
}

func TestApply_EmptyDocument(t *testing.T) {
	out, err := Apply(map[string]any{}, options.Flags{Landing: true}, catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["proxy-groups"]; !ok {
		t.Fatalf("a complete configuration must still be produced")
	}
}

func TestApply_Idempotent(t *testing.T) {
	doc, err := ParseDocument(sampleConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := catalog.Default()
	fl := options.Flags{Landing: true, Threshold: 1}

	first, err := Apply(doc, fl, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Apply(doc, fl, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := EncodeDocument(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EncodeDocument(second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("two runs over identical input serialize differently")
	}
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	doc, err := ParseDocument(sampleConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Apply(doc, options.Flags{}, catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := EncodeDocument(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reparsed map[string]any
	if err := yaml.Unmarshal(data, &reparsed); err != nil {
		t.Fatalf("emitted document is not valid YAML: %v", err)
	}
	groups, _ := reparsed["proxy-groups"].([]any)
	if len(groups) == 0 {
		t.Fatalf("emitted document has no proxy-groups")
	}
	last, _ := groups[len(groups)-1].(map[string]any)
	if last["name"] != catalog.NameGlobal {
		t.Fatalf("last group=%v, want GLOBAL", last["name"])
	}
}
