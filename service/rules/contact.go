package rules

import (
	"fmt"

	"portfolio-assistant/model"
)

// ==================== 联系方式相关回复 ====================

func Contact(p *model.Profile) string {
	return fmt.Sprintf("📬 <b>Let's Connect!</b><br><br>📧 Email: <a href=\"mailto:%s\">%s</a><br>📱 Phone: %s<br>📍 Location: %s<br><br>Or use the Contact page to send a direct message! 💬",
		p.Email, p.Email, p.Phone, p.Location)
}

func LinkedIn(p *model.Profile) string {
	return fmt.Sprintf("💼 Connect with %s on LinkedIn:<br><br>%s<br><br>Great for professional networking and opportunities!",
		p.ShortName, link(p.LinkedIn))
}

func GitHub(p *model.Profile) string {
	return fmt.Sprintf("🐙 Check out %s's code on GitHub:<br><br>%s<br><br>You'll find open-source projects and contributions there!",
		p.ShortName, link(p.GitHub))
}
