package rules

import (
	"fmt"
	"strings"

	"portfolio-assistant/model"
)

// ==================== 技能相关回复 ====================

var skillIcons = map[string]string{
	"programming": "💻",
	"ai_ml":       "🧠",
	"embedded":    "📟",
	"tools":       "🔧",
}

// Skills 按分类渲染全部技能
func Skills(p *model.Profile) string {
	sections := make([]string, 0, len(p.Skills))
	for _, c := range p.Skills {
		icon, ok := skillIcons[c.Key]
		if !ok {
			icon = "✨"
		}
		sections = append(sections, fmt.Sprintf("%s <b>%s:</b> %s", icon, c.Label, strings.Join(c.Items, ", ")))
	}
	return "🛠️ <b>Technical Skills:</b><br><br>" + strings.Join(sections, "<br><br>")
}

func PythonSkills(p *model.Profile) string {
	return fmt.Sprintf("🐍 <b>Python Expertise:</b><br><br>%s is an expert Python developer with 95%% proficiency, specializing in:<br>", p.ShortName) +
		bullets([]string{
			"AI/ML development with TensorFlow & PyTorch",
			"Computer Vision applications with OpenCV",
			"Data processing with NumPy & Pandas",
			"GUI development with Tkinter & Streamlit",
			"Automation and scripting",
		})
}

func EmbeddedSkills(p *model.Profile) string {
	return "📟 <b>Embedded Systems Expertise:</b><br><br>" +
		bullets([]string{
			"ESP32 Platform (Expert - 92%)",
			"Communication Protocols: UART, I2C, SPI, ESP-NOW, WiFi, BLE",
			"Sensor Integration: MPU6050, GPS, Cameras",
			"Firmware Development & Testing",
			"Real-time systems optimization",
		}) + toolkit(p, "embedded")
}

func AISkills(p *model.Profile) string {
	return "🧠 <b>AI/ML Expertise:</b><br><br>" +
		bullets([]string{
			"YOLOv8 & Object Detection (Expert)",
			"OpenCV & Image Processing (Expert)",
			"Multi-Object Tracking (ByteTrack)",
			"Deep Learning (LSTM, CNN)",
			"Spatiotemporal Analysis",
			"Model training and optimization",
		}) + toolkit(p, "ai_ml")
}

// toolkit 附上资料中该分类的技能列表，分类不存在时为空
func toolkit(p *model.Profile, key string) string {
	items := p.SkillItems(key)
	if len(items) == 0 {
		return ""
	}
	return "<br><br>🧰 <b>Toolkit:</b> " + strings.Join(items, ", ")
}
