package catalog

import (
	"regexp"
	"strings"
	"testing"
)

func TestDefault_RegionTableIsWellFormed(t *testing.T) {
	cat := Default()

	seen := make(map[string]bool, len(cat.Regions))
	for _, r := range cat.Regions {
		if seen[r.Key] {
			t.Fatalf("duplicate region key %q", r.Key)
		}
		seen[r.Key] = true

		if _, err := regexp.Compile(r.Filter); err != nil {
			t.Fatalf("region %s filter does not compile: %v", r.Key, err)
		}
		if r.Icon == "" {
			t.Fatalf("region %s has no icon", r.Key)
		}
	}

	for _, p := range []string{cat.LandingFilter, cat.LowCostFilter} {
		if _, err := regexp.Compile(p); err != nil {
			t.Fatalf("pattern %q does not compile: %v", p, err)
		}
	}
}

func TestDefault_BaseRulesReferenceKnownTargets(t *testing.T) {
	cat := Default()

	serviceNames := make(map[string]bool, len(cat.Services))
	for _, svc := range cat.Services {
		serviceNames[svc.Name] = true
	}

	matches := 0
	for _, r := range cat.BaseRules {
		if r.IsMatch() {
			matches++
			continue
		}
		switch {
		case r.Target == "DIRECT" || r.Target == "REJECT":
		case r.Target == NameSelect || r.Target == NameFinal:
		case serviceNames[r.Target]:
		default:
			t.Fatalf("rule %q targets unknown group %q", r.String(), r.Target)
		}

		if name, ok := strings.CutPrefix(r.Matcher, "RULE-SET,"); ok {
			if _, exists := cat.RuleProviders[name]; !exists {
				t.Fatalf("rule %q references unknown provider %q", r.String(), name)
			}
		}
	}
	if matches != 1 {
		t.Fatalf("MATCH count=%d, want exactly 1", matches)
	}
	if !cat.BaseRules[len(cat.BaseRules)-1].IsMatch() {
		t.Fatalf("MATCH must be the last base rule")
	}
}

func TestDefault_ReturnsFreshValues(t *testing.T) {
	a := Default()
	a.Regions[0].Key = "mutated"
	a.RuleProviders["private"] = RuleProvider{}

	b := Default()
	if b.Regions[0].Key == "mutated" {
		t.Fatalf("region table shared between calls")
	}
	if b.RuleProviders["private"].URL == "" {
		t.Fatalf("provider table shared between calls")
	}
}

func TestPoolName(t *testing.T) {
	if got := PoolName("香港"); got != "香港节点" {
		t.Fatalf("PoolName=%q", got)
	}
}
