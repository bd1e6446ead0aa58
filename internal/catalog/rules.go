package catalog

import "github.com/hazicy/override-rules/internal/model"

const (
	geositeBase = "https://raw.githubusercontent.com/MetaCubeX/meta-rules-dat/meta/geo/geosite/"
	geoipBase   = "https://raw.githubusercontent.com/MetaCubeX/meta-rules-dat/meta/geo/geoip/"
)

func domainProvider(name string) RuleProvider {
	return RuleProvider{
		Type:     "http",
		Behavior: "domain",
		URL:      geositeBase + name + ".yaml",
		Format:   "yaml",
		Interval: 86400,
	}
}

func ipProvider(name string) RuleProvider {
	return RuleProvider{
		Type:     "http",
		Behavior: "ipcidr",
		URL:      geoipBase + name + ".yaml",
		Format:   "yaml",
		Interval: 86400,
	}
}

func ruleProviderTable() map[string]RuleProvider {
	return map[string]RuleProvider{
		"private":    domainProvider("private"),
		"ai":         domainProvider("category-ai-!cn"),
		"telegram":   domainProvider("telegram"),
		"youtube":    domainProvider("youtube"),
		"netflix":    domainProvider("netflix"),
		"bahamut":    domainProvider("bahamut"),
		"microsoft":  domainProvider("microsoft"),
		"apple":      domainProvider("apple"),
		"google":     domainProvider("google"),
		"games":      domainProvider("category-games"),
		"gfw":        domainProvider("gfw"),
		"cn":         domainProvider("cn"),
		"telegramip": ipProvider("telegram"),
		"cnip":       ipProvider("cn"),
	}
}

// baseRuleTable is the fixed decision list. Order is significant; the single
// MATCH terminal is always last. The quic toggle may prefix one extra rule,
// see synth.BuildRules.
func baseRuleTable() []model.Rule {
	return []model.Rule{
		{Matcher: "RULE-SET,private", Target: model.PolicyDirect},
		{Matcher: "RULE-SET,ai", Target: "国外AI"},
		{Matcher: "RULE-SET,telegram", Target: "电报消息"},
		{Matcher: "RULE-SET,youtube", Target: "油管视频"},
		{Matcher: "RULE-SET,netflix", Target: "奈飞视频"},
		{Matcher: "RULE-SET,bahamut", Target: "巴哈姆特"},
		{Matcher: "RULE-SET,microsoft", Target: "微软服务"},
		{Matcher: "RULE-SET,apple", Target: "苹果服务"},
		{Matcher: "RULE-SET,google", Target: "谷歌服务"},
		{Matcher: "RULE-SET,games", Target: "游戏平台"},
		{Matcher: "RULE-SET,gfw", Target: NameSelect},
		{Matcher: "RULE-SET,cn", Target: model.PolicyDirect},
		{Matcher: "RULE-SET,telegramip", Target: "电报消息"},
		{Matcher: "RULE-SET,cnip", Target: model.PolicyDirect},
		{Matcher: "GEOIP,LAN", Target: model.PolicyDirect},
		{Matcher: "GEOIP,CN", Target: model.PolicyDirect},
		{Matcher: "MATCH", Target: NameFinal},
	}
}
