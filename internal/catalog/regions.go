package catalog

const iconBase = "https://raw.githubusercontent.com/Koolson/Qure/master/IconSet/Color/"

// regionTable is the documented classification order. Two-letter codes are
// matched case-sensitively on purpose: "(?i:hk)" would turn unrelated
// substrings into false matches, while full spellings stay case-insensitive.
func regionTable() []Region {
	return []Region{
		{Key: "香港", Filter: `香港|HK|(?i:hong ?kong)`, Icon: iconBase + "Hong_Kong.png"},
		{Key: "台湾", Filter: `台湾|TW|(?i:taiwan)`, Icon: iconBase + "Taiwan.png"},
		{Key: "新加坡", Filter: `新加坡|狮城|SG|(?i:singapore)`, Icon: iconBase + "Singapore.png"},
		{Key: "日本", Filter: `日本|JP|(?i:japan)`, Icon: iconBase + "Japan.png"},
		{Key: "美国", Filter: `美国|US|(?i:united ?states|america)`, Icon: iconBase + "United_States.png"},
		{Key: "韩国", Filter: `韩国|KR|(?i:korea)`, Icon: iconBase + "Korea.png"},
		{Key: "英国", Filter: `英国|UK|GB|(?i:united ?kingdom|britain)`, Icon: iconBase + "United_Kingdom.png"},
		{Key: "德国", Filter: `德国|DE|(?i:germany)`, Icon: iconBase + "Germany.png"},
		{Key: "法国", Filter: `法国|FR|(?i:france)`, Icon: iconBase + "France.png"},
		{Key: "荷兰", Filter: `荷兰|NL|(?i:netherlands)`, Icon: iconBase + "Netherlands.png"},
		{Key: "俄罗斯", Filter: `俄罗斯|RU|(?i:russia)`, Icon: iconBase + "Russia.png"},
		{Key: "土耳其", Filter: `土耳其|TR|(?i:turkey|t(ü|u)rkiye)`, Icon: iconBase + "Turkey.png"},
		{Key: "加拿大", Filter: `加拿大|CA|(?i:canada)`, Icon: iconBase + "Canada.png"},
		{Key: "澳大利亚", Filter: `澳大利亚|澳洲|AU|(?i:australia)`, Icon: iconBase + "Australia.png"},
	}
}
