package rules

import (
	"fmt"
	"strings"

	"portfolio-assistant/model"
)

// ==================== 项目相关回复 ====================

// Projects 项目总览，按资料中的顺序每行一个
func Projects(p *model.Profile) string {
	lines := make([]string, len(p.Projects))
	for i, pr := range p.Projects {
		lines[i] = fmt.Sprintf("• <b>%s</b>: %s", pr.Name, pr.Description)
	}
	return fmt.Sprintf("🚀 Here are %s's key projects:<br><br>%s<br><br>Which project interests you most?",
		p.ShortName, strings.Join(lines, "<br>"))
}

func StampedeProject(p *model.Profile) string {
	return "🎯 <b>Smart Stampede Detection System</b><br><br>This is a real-time crowd analytics system using:<br>" +
		bullets([]string{
			"YOLOv8 for person detection",
			"ByteTrack for multi-object tracking",
			"4 spatiotemporal heatmaps (position, path, dwell time, velocity)",
			"30-50 FPS performance",
			"Privacy-preserving architecture",
		}) +
		"<br><br>It's designed for public safety monitoring at events and gatherings!"
}

func OCRProject(p *model.Profile) string {
	return "🗺️ <b>Cadastral Map OCR System</b><br><br>A domain-specific document AI pipeline:<br>" +
		bullets([]string{
			"95% text detection accuracy",
			"92% symbol detection precision",
			"Built with EasyOCR and OpenCV",
			"2-3 seconds average processing",
			"Outputs structured JSON/Excel for GIS analytics",
		})
}

func RoboticsProjects(p *model.Profile) string {
	return "🤖 <b>Robotics Projects:</b><br><br>" +
		bullets([]string{
			"<b>WiFi Camera Car</b>: ESP32-CAM with real-time streaming and WebSocket control",
			"<b>4DOF Robotic Arm</b>: Precise servo control with PWM and feedback monitoring",
			"<b>Joystick-Controlled Robot</b>: ESP-NOW wireless communication",
			"<b>Pan-Tilt Camera System</b>: 2-axis servo control for camera positioning",
		})
}
