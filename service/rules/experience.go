package rules

import (
	"fmt"
	"strings"

	"portfolio-assistant/model"
)

// ==================== 经历相关回复 ====================

// Experience 实习经历总览，按资料顺序每行一条
func Experience(p *model.Profile) string {
	lines := make([]string, len(p.Internships))
	for i, in := range p.Internships {
		lines[i] = fmt.Sprintf("• <b>%s</b> at %s (%s)", in.Title, in.Organization, in.Period)
	}
	return fmt.Sprintf("💼 <b>Professional Experience:</b><br><br>%s<br><br>Both focused on embedded systems, AI/ML, and robotics research!",
		strings.Join(lines, "<br>"))
}

func IITInternship(p *model.Profile) string {
	return "🏛️ <b>IIT Tirupati Internship</b><br><br>Role: STAR-PNT Summer Intern<br>Organization: Navavishkar I-Hub Foundation<br>Period: July 2025 - Present<br><br>" +
		"Working on embedded vision systems for drone-based safety monitoring and computer vision pipelines!"
}

func NITKInternship(p *model.Profile) string {
	return "🔬 <b>NITK Surathkal Internship</b><br><br>Role: Research Intern (Center for System Design)<br>Period: May - July 2025<br><br>" +
		bullets([]string{
			"Developed ESP32 firmware for robotic agents",
			"ROS 2 and Gazebo simulation",
			"Co-authored IEEE paper on communication protocols!",
		})
}

func Publication(p *model.Profile) string {
	venue, title := p.Publication, p.Publication
	if before, after, ok := strings.Cut(p.Publication, " - "); ok {
		venue, title = before, after
	}
	return fmt.Sprintf("📄 <b>IEEE Publication</b><br><br>Title: \"Comparative Evaluation of %s\"<br><br>Published at: %s<br>Status: ✅ Accepted<br><br>Co-authored with researchers at NITK Surathkal!",
		title, venue)
}

func Education(p *model.Profile) string {
	return fmt.Sprintf("🎓 <b>Education:</b><br><br>%s<br><br>Currently in final year, specializing in:<br>", p.Education) +
		bullets([]string{
			"Embedded Systems",
			"Signal Processing",
			"AI/ML Applications",
		})
}
