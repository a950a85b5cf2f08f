package rules

import (
	"fmt"

	"portfolio-assistant/model"
)

// ==================== 寒暄与兜底回复 ====================

// Welcome 新会话的第一条助手消息
func Welcome(p *model.Profile) string {
	return fmt.Sprintf("Hey there! 👋 I'm %s's AI assistant. I can tell you about %s skills, projects, experience, or help you get in touch!",
		p.ShortName, possessive(p))
}

func Greeting(p *model.Profile) string {
	return fmt.Sprintf("Hello! 👋 Great to meet you! I'm here to help you learn about %s. What would you like to know? You can ask about %s projects, skills, or how to get in touch!",
		p.Name, possessive(p))
}

func About(p *model.Profile) string {
	return fmt.Sprintf("👨‍💻 <b>About %s</b><br><br>A passionate %s from India. Currently pursuing %s.<br><br>"+
		"%s specializes in building intelligent systems that bridge hardware and software - from ESP32 firmware to AI-powered crowd analytics!<br><br>"+
		"🏆 Published at IEEE ICRM 2025<br>🎯 Focus: Safety-critical systems & Embedded AI",
		p.Name, p.Role, p.Education, p.ShortName)
}

func Thanks(p *model.Profile) string {
	return fmt.Sprintf("You're welcome! 😊 Feel free to ask anything else about %s's work. I'm always happy to help!", p.ShortName)
}

func Farewell(p *model.Profile) string {
	return "Goodbye! 👋 It was great chatting with you. Feel free to come back anytime. Good luck with your projects!"
}

func Hire(p *model.Profile) string {
	return fmt.Sprintf("💼 <b>Hiring %s?</b><br><br>%s is currently available for:<br>", p.ShortName, p.ShortName) +
		bullets([]string{
			"Embedded Systems Internships",
			"Research Collaborations",
			"Freelance Projects",
			"Full-Time Opportunities (from May 2026)",
		}) +
		fmt.Sprintf("<br><br>📧 Reach out: %s", p.Email)
}

// Fallback 没有任何规则命中时的统一回复，列出支持的话题
func Fallback(p *model.Profile) string {
	return "I'm not sure I understand that completely, but I'd love to help! 🤔<br><br>You can ask me about:<br>" +
		bullets([]string{
			fmt.Sprintf("%s's <b>projects</b> and work", p.ShortName),
			fmt.Sprintf("%s technical <b>skills</b>", capitalized(possessive(p))),
			"Research <b>experience</b>",
			fmt.Sprintf("How to <b>contact</b> %s", object(p)),
		}) +
		"<br><br>What would you like to know?"
}
