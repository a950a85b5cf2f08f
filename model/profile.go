package model

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile 个人资料，启动时加载一次，之后只读
type Profile struct {
	Name        string          `yaml:"name" json:"name"`
	ShortName   string          `yaml:"short_name" json:"short_name"`
	Role        string          `yaml:"role" json:"role"`
	Email       string          `yaml:"email" json:"email"`
	Phone       string          `yaml:"phone" json:"phone"`
	Location    string          `yaml:"location" json:"location"`
	Education   string          `yaml:"education" json:"education"`
	GitHub      string          `yaml:"github" json:"github"`
	LinkedIn    string          `yaml:"linkedin" json:"linkedin"`
	Pronouns    Pronouns        `yaml:"pronouns" json:"pronouns"`
	Skills      []SkillCategory `yaml:"skills" json:"skills"`
	Projects    []Project       `yaml:"projects" json:"projects"`
	Internships []Internship    `yaml:"internships" json:"internships"`
	Publication string          `yaml:"publication" json:"publication"`
}

type Pronouns struct {
	Subject    string `yaml:"subject" json:"subject"`
	Object     string `yaml:"object" json:"object"`
	Possessive string `yaml:"possessive" json:"possessive"`
}

// SkillCategory 技能分类，按配置顺序渲染
type SkillCategory struct {
	Key   string   `yaml:"key" json:"key"`
	Label string   `yaml:"label" json:"label"`
	Items []string `yaml:"items" json:"items"`
}

type Project struct {
	Name        string `yaml:"name" json:"name"`
	Tech        string `yaml:"tech" json:"tech"`
	Description string `yaml:"description" json:"description"`
}

type Internship struct {
	Title        string `yaml:"title" json:"title"`
	Organization string `yaml:"organization" json:"organization"`
	Period       string `yaml:"period" json:"period"`
}

// LoadProfile 从 YAML 文件读取个人资料并校验
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取个人资料失败: %w", err)
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("解析个人资料失败: %w", err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.ShortName == "" {
		if fields := strings.Fields(p.Name); len(fields) > 0 {
			p.ShortName = fields[0]
		}
	}
	if p.Pronouns.Subject == "" {
		p.Pronouns = Pronouns{Subject: "they", Object: "them", Possessive: "their"}
	}
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is empty", ErrInvalidProfile)
	}
	seen := make(map[string]bool, len(p.Skills))
	for _, c := range p.Skills {
		if c.Key == "" {
			return fmt.Errorf("%w: skill category without key", ErrInvalidProfile)
		}
		if seen[c.Key] {
			return fmt.Errorf("%w: duplicate skill category %q", ErrInvalidProfile, c.Key)
		}
		seen[c.Key] = true
	}
	for i, pr := range p.Projects {
		if pr.Name == "" {
			return fmt.Errorf("%w: project #%d has no name", ErrInvalidProfile, i)
		}
	}
	return nil
}

// SkillItems 返回某个分类下的技能列表，不存在时返回 nil
func (p *Profile) SkillItems(key string) []string {
	for _, c := range p.Skills {
		if c.Key == key {
			return c.Items
		}
	}
	return nil
}

// Clone 深拷贝，保证引擎持有的资料不会被调用方修改
func (p *Profile) Clone() *Profile {
	c := *p
	c.Skills = make([]SkillCategory, len(p.Skills))
	for i, s := range p.Skills {
		s.Items = append([]string(nil), s.Items...)
		c.Skills[i] = s
	}
	c.Projects = append([]Project(nil), p.Projects...)
	c.Internships = append([]Internship(nil), p.Internships...)
	return &c
}
