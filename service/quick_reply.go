package service

import "portfolio-assistant/model"

// RootMenu 初始快捷回复，也是查表未命中时的兜底
var RootMenu = []model.Suggestion{
	{Label: "💼 Projects", Query: "projects"},
	{Label: "🛠️ Skills", Query: "skills"},
	{Label: "📧 Contact", Query: "contact"},
	{Label: "🎓 Experience", Query: "experience"},
}

// QuickReplyContext 上一次选择的话题 -> 下一组建议
var QuickReplyContext = map[model.QuickReplyState][]model.Suggestion{
	model.StateProjects: {
		{Label: "🎯 Stampede Detection", Query: "stampede project"},
		{Label: "🗺️ OCR System", Query: "ocr project"},
		{Label: "🤖 Robotics", Query: "robotics projects"},
	},
	model.StateSkills: {
		{Label: "🐍 Python", Query: "python skills"},
		{Label: "📟 Embedded", Query: "embedded skills"},
		{Label: "🧠 AI/ML", Query: "ai skills"},
	},
	model.StateContact: {
		{Label: "📧 Email", Query: "email"},
		{Label: "💼 LinkedIn", Query: "linkedin"},
		{Label: "🐙 GitHub", Query: "github"},
	},
	model.StateExperience: {
		{Label: "🏛️ IIT Tirupati", Query: "iit internship"},
		{Label: "🔬 NITK", Query: "nitk internship"},
		{Label: "📄 Publication", Query: "publication"},
	},
}

// lookupSuggestions 返回话题对应的建议副本，未知话题回到根菜单
func lookupSuggestions(topic string) []model.Suggestion {
	next, ok := QuickReplyContext[model.QuickReplyState(topic)]
	if !ok || len(next) == 0 {
		next = RootMenu
	}
	return append([]model.Suggestion(nil), next...)
}
