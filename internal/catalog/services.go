package catalog

// serviceTable lists the per-category selector groups in output order.
// DirectFirst marks first-party/OS traffic that should prefer DIRECT;
// PreferredRegions marks categories with a hard regional affinity.
func serviceTable() []Service {
	return []Service{
		{Name: "国外AI", Icon: iconBase + "Bot.png"},
		{Name: "电报消息", Icon: iconBase + "Telegram.png"},
		{Name: "油管视频", Icon: iconBase + "YouTube.png"},
		{Name: "奈飞视频", Icon: iconBase + "Netflix.png", PreferredRegions: []string{"新加坡", "美国"}},
		{Name: "巴哈姆特", Icon: iconBase + "Bahamut.png", PreferredRegions: []string{"台湾"}},
		{Name: "谷歌服务", Icon: iconBase + "Google_Search.png"},
		{Name: "微软服务", Icon: iconBase + "Microsoft.png", DirectFirst: true},
		{Name: "苹果服务", Icon: iconBase + "Apple.png", DirectFirst: true},
		{Name: "游戏平台", Icon: iconBase + "Game.png", DirectFirst: true},
	}
}
