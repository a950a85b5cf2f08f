package service

import "portfolio-assistant/service/rules"

const (
	RuleGreeting    = "greeting"
	RuleProjects    = "projects"
	RuleStampede    = "project_stampede"
	RuleOCR         = "project_ocr"
	RuleRobotics    = "project_robotics"
	RuleSkills      = "skills"
	RulePython      = "skills_python"
	RuleEmbedded    = "skills_embedded"
	RuleAI          = "skills_ai"
	RuleContact     = "contact"
	RuleLinkedIn    = "contact_linkedin"
	RuleGitHub      = "contact_github"
	RuleExperience  = "experience"
	RuleIIT         = "internship_iit"
	RuleNITK        = "internship_nitk"
	RulePublication = "publication"
	RuleEducation   = "education"
	RuleAbout       = "about"
	RuleThanks      = "thanks"
	RuleFarewell    = "farewell"
	RuleHire        = "hire"
	RuleFallback    = "fallback"
)

// DefaultRules 规则表，顺序即优先级，第一条命中的规则生效。
// 通用规则通过 ShadowedBy 让位给更具体的规则，新增具体规则时只需加到对应列表里。
// Keywords 按词首匹配（skill 命中 skillset），短词放进 Words 只按整词匹配。
var DefaultRules = []Rule{
	{
		ID:       RuleGreeting,
		Keywords: []string{`hello`, `howdy`, `greeting`},
		Words:    []string{`hi`, `hey`},
		Reply:    rules.Greeting,
	},
	{
		ID:         RuleProjects,
		Keywords:   []string{`project`, `work`, `portfolio`, `built`, `created`},
		ShadowedBy: []string{RuleStampede, RuleOCR, RuleRobotics},
		Reply:      rules.Projects,
	},
	{
		ID:       RuleStampede,
		Keywords: []string{`stampede`, `crowd`, `detect`, `safety`, `yolo`, `bytetrack`},
		Reply:    rules.StampedeProject,
	},
	{
		ID:       RuleOCR,
		Keywords: []string{`ocr`, `cadastral`, `map`, `document`},
		Reply:    rules.OCRProject,
	},
	{
		ID:       RuleRobotics,
		Keywords: []string{`robot`, `servo`, `motor`},
		Words:    []string{`cars?`, `arms?`},
		Reply:    rules.RoboticsProjects,
	},
	{
		ID:         RuleSkills,
		Keywords:   []string{`skill`, `tech`, `know`, `expertise`, `proficien`},
		ShadowedBy: []string{RulePython, RuleEmbedded, RuleAI},
		Reply:      rules.Skills,
	},
	{
		ID:       RulePython,
		Keywords: []string{`python`},
		Reply:    rules.PythonSkills,
	},
	{
		ID:       RuleEmbedded,
		Keywords: []string{`embedded`, `esp32`, `arduino`, `microcontroller`, `firmware`},
		Reply:    rules.EmbeddedSkills,
	},
	{
		ID:       RuleAI,
		Keywords: []string{`machine learning`, `deep`, `neural`, `computer vision`},
		Words:    []string{`ai`, `ml`},
		Reply:    rules.AISkills,
	},
	{
		ID:       RuleContact,
		Keywords: []string{`contact`, `reach`, `e-?mail`, `phone`, `connect`},
		Reply:    rules.Contact,
	},
	{
		ID:       RuleLinkedIn,
		Keywords: []string{`linkedin`},
		Reply:    rules.LinkedIn,
	},
	{
		ID:       RuleGitHub,
		Keywords: []string{`github`},
		Reply:    rules.GitHub,
	},
	{
		ID:         RuleExperience,
		Keywords:   []string{`experienc`, `intern`, `work`, `job`, `research`},
		ShadowedBy: []string{RuleIIT, RuleNITK},
		Reply:      rules.Experience,
	},
	{
		ID:       RuleIIT,
		Keywords: []string{`iit`, `tirupati`, `star-pnt`},
		Reply:    rules.IITInternship,
	},
	{
		ID:       RuleNITK,
		Keywords: []string{`nitk`, `surathkal`, `system design`},
		Reply:    rules.NITKInternship,
	},
	{
		ID:       RulePublication,
		Keywords: []string{`publication`, `paper`, `ieee`},
		Reply:    rules.Publication,
	},
	{
		ID:       RuleEducation,
		Keywords: []string{`educat`, `stud`, `college`, `universit`, `degree`},
		Reply:    rules.Education,
	},
	{
		ID:       RuleAbout,
		Keywords: []string{`about`, `introduc`},
		Words:    []string{`who`},
		Reply:    rules.About,
	},
	{
		ID:       RuleThanks,
		Keywords: []string{`thank`, `appreciat`},
		Words:    []string{`thx`},
		Reply:    rules.Thanks,
	},
	{
		ID:       RuleFarewell,
		Keywords: []string{`goodbye`, `see you`},
		Words:    []string{`bye`, `later`},
		Reply:    rules.Farewell,
	},
	{
		ID:       RuleHire,
		Keywords: []string{`hir`, `position`, `opportunit`, `full-time`},
		Reply:    rules.Hire,
	},
}
