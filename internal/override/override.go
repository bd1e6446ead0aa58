// Package override applies the full synthesis pipeline to a routing client
// configuration document: classify proxies, build the group graph and rule
// list, and inject them together with the DNS/sniffer/geodata sections.
package override

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hazicy/override-rules/internal/catalog"
	"github.com/hazicy/override-rules/internal/classify"
	"github.com/hazicy/override-rules/internal/model"
	"github.com/hazicy/override-rules/internal/options"
	"github.com/hazicy/override-rules/internal/synth"
)

type ApplyError struct {
	AppError model.AppError
	Cause    error
}

func (e *ApplyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *ApplyError) Unwrap() error { return e.Cause }

// ParseDocument parses the input configuration document. Arbitrary keys are
// preserved; only "proxies" is interpreted. Empty input yields an empty
// document rather than an error.
func ParseDocument(text string) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ApplyError{
			AppError: model.AppError{
				Code:    "CONFIG_PARSE_ERROR",
				Message: "配置文档不是合法 YAML",
				Stage:   "parse_config",
			},
			Cause: err,
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// EncodeDocument serializes the final document.
func EncodeDocument(doc map[string]any) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, &ApplyError{
			AppError: model.AppError{
				Code:    "CONFIG_ENCODE_ERROR",
				Message: "配置文档序列化失败",
				Stage:   "encode_config",
			},
			Cause: err,
		}
	}
	return out, nil
}

// Proxies extracts the proxy descriptors from the document. Entries that are
// not mappings are skipped for classification purposes; they still pass
// through in the output untouched since the proxies field is never rewritten.
func Proxies(doc map[string]any) []model.Proxy {
	raw, _ := doc["proxies"].([]any)
	out := make([]model.Proxy, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, model.Proxy(m))
		}
	}
	return out
}

// Apply runs one synthesis pass and returns a new document with the injected
// fields. The input document is not mutated; its proxies and unrecognized
// keys are carried through as-is. Apply is pure: identical inputs produce a
// structurally identical document.
func Apply(doc map[string]any, fl options.Flags, cat catalog.Catalog) (map[string]any, error) {
	counts, lowCost := classify.Classify(Proxies(doc), cat)

	groups, err := synth.Assemble(synth.Inputs{
		Catalog: cat,
		Counts:  counts,
		LowCost: lowCost,
		Flags:   fl,
	})
	if err != nil {
		return nil, err
	}

	rules := synth.BuildRules(cat, fl.QUIC)
	ruleLines := make([]string, 0, len(rules))
	for _, r := range rules {
		ruleLines = append(ruleLines, r.String())
	}

	out := make(map[string]any, len(doc)+10)
	for k, v := range doc {
		out[k] = v
	}

	out["proxy-groups"] = groups
	out["rules"] = ruleLines
	out["rule-providers"] = cat.RuleProviders
	out["sniffer"] = catalog.SnifferConfig()
	out["dns"] = catalog.DNSConfig(fl.FakeIP, fl.IPv6)
	out["ipv6"] = fl.IPv6
	out["geodata-mode"] = true
	out["geox-url"] = catalog.GeoXURLs()

	if fl.Full {
		for k, v := range catalog.FullPatch() {
			out[k] = v
		}
	}
	if fl.KeepAlive {
		for k, v := range catalog.KeepAlivePatch() {
			out[k] = v
		}
	}

	return out, nil
}
