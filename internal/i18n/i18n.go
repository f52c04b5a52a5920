// Package i18n holds the zh/en message catalog for user-facing strings.
package i18n

// Language selects the UI language
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// Languages lists the supported languages
func Languages() []Language {
	return []Language{Chinese, English}
}

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == Chinese || l == English
}

// T looks up a message by key, falling back to English and finally to
// the key itself so a missing translation never renders blank
func T(lang Language, key string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalog[English][key]; ok {
		return s
	}
	return key
}

var catalog = map[Language]map[string]string{
	Chinese: {
		"nav.report":  "报表",
		"nav.results": "战绩",
		"nav.record":  "记牌",
		"nav.hands":   "手牌",
		"nav.more":    "更多",

		"common.cancel":   "取消",
		"common.save":     "保存",
		"common.delete":   "删除",
		"common.back":     "返回",
		"common.loading":  "加载中...",
		"common.none":     "无",
		"common.notes":    "备注",
		"common.position": "位置",

		"filter.all":    "全部时间",
		"filter.week":   "本周",
		"filter.month":  "本月",
		"filter.year":   "今年",
		"filter.allLoc": "所有地点",

		"dashboard.totalPnl": "总盈亏",
		"dashboard.hourly":   "时薪",
		"dashboard.winRate":  "胜率",
		"dashboard.sessions": "场次",
		"dashboard.title":    "数据汇总",

		"live.startNew":   "开始新对局",
		"live.logPast":    "补录战绩",
		"live.location":   "地点",
		"live.blinds":     "盲注",
		"live.currency":   "货币",
		"live.buyIn":      "初始买入",
		"live.rebuy":      "补码",
		"live.cashOut":    "离桌",
		"live.pause":      "暂停",
		"live.resume":     "继续",
		"live.duration":   "游戏时长",
		"live.totalBuyIn": "总买入",
		"live.endSession": "结束游戏",
		"live.ongoing":    "进行中",

		"hand.hero":       "我方",
		"hand.board":      "公共牌",
		"hand.villain":    "对手",
		"hand.profit":     "本局盈亏",
		"hand.bestHands":  "最强起手牌 (Top 3)",
		"hand.worstHands": "亏损起手牌 (Top 3)",
		"hand.count":      "次数",
		"hand.analyzing":  "分析中...",
		"hand.analysis":   "AI 教练分析",

		"history.title":     "战绩列表",
		"history.noHistory": "暂无历史记录",

		"more.export":       "数据导出",
		"more.driveBackup":  "Google Drive 备份",
		"more.restoreDrive": "从云端恢复",
		"more.lastBackup":   "上次备份",

		"ai.noKey":        "AI 分析不可用: 请在设置中配置 API Key。",
		"ai.analyzeError": "连接 AI 助手时出错，请检查 API Key 是否正确。",
		"ai.chatNoKey":    "AI 服务不可用: 请在设置中配置 API Key。",
		"ai.chatError":    "AI 暂时掉线了，请检查 API Key 是否正确。",
		"ai.empty":        "无法生成分析。",
		"ai.chatEmpty":    "无法生成回复。",
		"ai.greeting":     "你好！我是 HAO，你的私人扑克助手。无论是手牌复盘、概率计算还是心态建设，我都可以帮你。今天想聊点什么？",

		"backup.noFile":    "云端没有找到备份文件",
		"backup.badImport": "导入文件格式无效",
	},
	English: {
		"nav.report":  "Report",
		"nav.results": "Results",
		"nav.record":  "Record",
		"nav.hands":   "Hands",
		"nav.more":    "More",

		"common.cancel":   "Cancel",
		"common.save":     "Save",
		"common.delete":   "Delete",
		"common.back":     "Back",
		"common.loading":  "Loading...",
		"common.none":     "None",
		"common.notes":    "Notes",
		"common.position": "Position",

		"filter.all":    "All Time",
		"filter.week":   "This Week",
		"filter.month":  "This Month",
		"filter.year":   "This Year",
		"filter.allLoc": "All Locations",

		"dashboard.totalPnl": "Total P/L",
		"dashboard.hourly":   "Hourly",
		"dashboard.winRate":  "Win Rate",
		"dashboard.sessions": "Sessions",
		"dashboard.title":    "Summary",

		"live.startNew":   "Start New Game",
		"live.logPast":    "Log Past Game",
		"live.location":   "Location",
		"live.blinds":     "Blinds",
		"live.currency":   "Currency",
		"live.buyIn":      "Buy-in",
		"live.rebuy":      "Rebuy",
		"live.cashOut":    "Cash Out",
		"live.pause":      "Pause",
		"live.resume":     "Resume",
		"live.duration":   "Duration",
		"live.totalBuyIn": "Total Buy-in",
		"live.endSession": "End Session",
		"live.ongoing":    "Live",

		"hand.hero":       "Hero",
		"hand.board":      "Board",
		"hand.villain":    "Villain",
		"hand.profit":     "P/L",
		"hand.bestHands":  "Best Hands (Top 3)",
		"hand.worstHands": "Worst Hands (Top 3)",
		"hand.count":      "Count",
		"hand.analyzing":  "Thinking...",
		"hand.analysis":   "Coach Analysis",

		"history.title":     "Session Results",
		"history.noHistory": "No history available",

		"more.export":       "Export Data",
		"more.driveBackup":  "Google Drive Backup",
		"more.restoreDrive": "Restore from Cloud",
		"more.lastBackup":   "Last Backup",

		"ai.noKey":        "AI Analysis unavailable: Please set API Key in Settings.",
		"ai.analyzeError": "Error connecting to AI Assistant, please check your API Key.",
		"ai.chatNoKey":    "AI Service unavailable: Please set API Key in Settings.",
		"ai.chatError":    "AI is currently offline, please check your API Key.",
		"ai.empty":        "Could not generate analysis.",
		"ai.chatEmpty":    "No response generated.",
		"ai.greeting":     "Hi! I am HAO, your poker assistant. Ask me anything about hands, odds, or mindset.",

		"backup.noFile":    "No backup file found",
		"backup.badImport": "Invalid import file",
	},
}
