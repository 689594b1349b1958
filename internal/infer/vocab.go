package infer

import "github.com/aviatorstc/bloggen/internal/models"

// categoryRule pairs a keyword group with the category it selects. Rules are
// evaluated in order against the lowercased title+body; first match wins.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"DGCA Exams", []string{"dgca", "exam", "test", "preparation"}},
	{"Safety & Regulations", []string{"safety", "regulation", "procedure"}},
	{"Aviation Careers", []string{"career", "job", "salary", "opportunity"}},
	{"Flight Training", []string{"training", "course", "lesson", "instructor"}},
	{"Pilot Licensing", []string{"license", "cpl", "atpl", "rating"}},
	{"Aircraft Systems", []string{"system", "aircraft", "engine", "avionics"}},
	{"Navigation", []string{"navigation", "gps", "ils", "approach"}},
	{"Weather & Meteorology", []string{"weather", "meteorology", "turbulence", "wind"}},
}

const defaultCategory = "Aviation Industry"

// tagVocabulary is scanned in order for substring presence. Order matters:
// earlier terms claim tag slots first.
var tagVocabulary = []string{
	"pilot training", "cpl", "atpl", "dgca", "flight school", "aviation career",
	"commercial pilot", "airline pilot", "flight instructor", "aircraft systems",
	"navigation", "meteorology", "safety", "regulations", "exam preparation",
	"pilot license", "flying", "aviation industry", "pilot job", "flight training",
}

// focusKeywords are multi-word phrases checked in priority order.
var focusKeywords = []string{
	"pilot training", "dgca exam", "commercial pilot", "flight training",
	"aviation career", "pilot license", "cpl training", "atpl training",
	"aviation safety", "pilot job", "flight instructor", "aircraft systems",
}

const defaultFocusKeyword = "pilot training"

// authorRule attributes a post to an instructor when the body mentions them
// by name or touches their topic.
type authorRule struct {
	author   models.Author
	keywords []string
}

var authorRules = []authorRule{
	{models.AuthorAnkit, []string{"ankit kumar", "ground school"}},
	{models.AuthorDhruv, []string{"dhruv shirkoli", "safety"}},
	{models.AuthorSaksham, []string{"saksham khandelwal", "exam"}},
}

type articleTypeRule struct {
	articleType  string
	resourceType string
	keywords     []string
}

var articleTypeRules = []articleTypeRule{
	{"HowTo", "Guide", []string{"guide", "how to", "steps", "tutorial"}},
	{"Educational", "Article", []string{"tips", "advice", "best practices"}},
}

type levelRule struct {
	level    string
	keywords []string
}

var levelRules = []levelRule{
	{"Beginner", []string{"beginner", "basic", "introduction", "getting started"}},
	{"Advanced", []string{"advanced", "expert", "professional", "complex"}},
}
