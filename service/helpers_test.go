package service

import (
	"sync"
	"testing"
	"time"

	"portfolio-assistant/model"
)

func testProfile() *model.Profile {
	return &model.Profile{
		Name:      "Dhesurya Kella",
		ShortName: "Dhesurya",
		Role:      "Embedded Systems & AI/ML Engineer",
		Email:     "dhesuryak@gmail.com",
		Phone:     "+91 88979 90490",
		Location:  "Vizianagaram, Andhra Pradesh, India",
		Education: "B.Tech ECE at MVGR College of Engineering (2022-2026)",
		GitHub:    "https://github.com/Dhesuryakella",
		LinkedIn:  "https://in.linkedin.com/in/dhesuryakella",
		Pronouns:  model.Pronouns{Subject: "he", Object: "him", Possessive: "his"},
		Skills: []model.SkillCategory{
			{Key: "programming", Label: "Programming", Items: []string{"Python", "Embedded C", "C/C++", "JavaScript"}},
			{Key: "ai_ml", Label: "AI/ML", Items: []string{"YOLOv8", "OpenCV", "TensorFlow", "PyTorch", "LSTM", "ByteTrack"}},
			{Key: "embedded", Label: "Embedded", Items: []string{"ESP32", "Arduino", "Raspberry Pi", "I2C", "SPI", "UART", "ESP-NOW"}},
			{Key: "tools", Label: "Tools", Items: []string{"ROS", "Gazebo", "Git", "MATLAB", "Streamlit"}},
		},
		Projects: []model.Project{
			{Name: "Smart Stampede Detection System", Tech: "YOLOv8, ByteTrack, Computer Vision", Description: "Real-time crowd analytics with spatiotemporal heatmaps"},
			{Name: "Cadastral Map OCR System", Tech: "EasyOCR, OpenCV, Python", Description: "95% accuracy document AI for map digitization"},
			{Name: "ESP32 Multi-Node Communication", Tech: "ESP32, ESP-NOW, Embedded C", Description: "Low-latency wireless firmware for robotics"},
			{Name: "WiFi Camera Car", Tech: "ESP32-CAM, WebSocket, Motor Control", Description: "Real-time video streaming with web control"},
			{Name: "4DOF Robotic Arm", Tech: "ESP32, PWM, Servo Motors", Description: "Real-time servo control with feedback"},
		},
		Internships: []model.Internship{
			{Title: "STAR-PNT Summer Intern", Organization: "IIT Tirupati Navavishkar I-Hub", Period: "July 2025 - Present"},
			{Title: "Research Intern", Organization: "NITK Surathkal (Center for System Design)", Period: "May - July 2025"},
		},
		Publication: "IEEE ICRM 2025 - Communication Protocols with Vision-Based Localization",
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testProfile())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// stepClock 每次调用前进一秒
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2025, 7, 1, 14, 59, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}
