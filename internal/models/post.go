// Package models defines the domain types for the blog generator.
package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Workflow statuses.
const (
	WorkflowDraft     = "Draft"
	WorkflowPublished = "Published"
)

// MaxTags is the upper bound on tags carried by a post.
const MaxTags = 5

// Categories is the fixed set of post categories.
var Categories = []string{
	"Flight Training",
	"Aviation Careers",
	"Safety & Regulations",
	"DGCA Exams",
	"Pilot Licensing",
	"Aircraft Systems",
	"Navigation",
	"Weather & Meteorology",
	"Aviation Industry",
	"Career Guidance",
}

// Author is a name + instructor image pair.
type Author struct {
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
}

// The fixed roster of instructors posts can be attributed to.
var (
	AuthorAman    = Author{Name: "Aman Suryavanshi", Image: "/instructors/aman-suryavanshi.jpg"}
	AuthorAnkit   = Author{Name: "Ankit Kumar", Image: "/instructors/ankit-kumar.jpg"}
	AuthorDhruv   = Author{Name: "Dhruv Shirkoli", Image: "/instructors/dhruv-shirkoli.jpg"}
	AuthorSaksham = Author{Name: "Saksham Khandelwal", Image: "/instructors/saksham-khandelwal.jpg"}
)

// Authors lists the full roster, default first.
var Authors = []Author{AuthorAman, AuthorAnkit, AuthorDhruv, AuthorSaksham}

// AuthorByName looks an author up in the roster.
func AuthorByName(name string) (Author, bool) {
	for _, a := range Authors {
		if a.Name == name {
			return a, true
		}
	}
	return Author{}, false
}

// StructuredData describes the SEO structured-data descriptor of a post.
type StructuredData struct {
	ArticleType          string `json:"articleType" yaml:"articleType"`
	LearningResourceType string `json:"learningResourceType" yaml:"learningResourceType"`
	EducationalLevel     string `json:"educationalLevel" yaml:"educationalLevel"`
	TimeRequired         string `json:"timeRequired" yaml:"timeRequired"`
}

// Flags are the validation flags computed over an assembled post.
type Flags struct {
	HasRequiredFields bool `json:"hasRequiredFields"`
	HasValidSEO       bool `json:"hasValidSeo"`
	HasValidImages    bool `json:"hasValidImages"`
	ReadyForPublish   bool `json:"readyForPublish"`
}

// BlogPost is the canonical record assembled per invocation. Every field is
// either caller-supplied or filled with an inferred default; none is left
// unset. The record lives in memory only until the markdown file is written.
type BlogPost struct {
	Title              string
	Slug               string
	Excerpt            string
	Body               string
	Author             Author
	Category           string
	Tags               []string
	FeaturedImage      string
	AltText            string
	Featured           bool
	PublishedAt        string // ISO-8601
	SEOTitle           string
	SEODescription     string
	FocusKeyword       string
	AdditionalKeywords []string
	ReadingTime        int // minutes
	WorkflowStatus     string
	StructuredData     StructuredData
	WordCount          int
	SEOScore           int
	LastSEOCheck       string // ISO-8601
	Flags              Flags
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate rejects records whose enumerated fields fall outside the fixed
// sets. Inferred defaults always pass; this catches out-of-enum values
// supplied by the caller.
func (p *BlogPost) Validate() error {
	if err := validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required, validation.Match(slugRe)),
		validation.Field(&p.Excerpt, validation.RuneLength(0, 160)),
		validation.Field(&p.Category, validation.Required, validation.In(toAny(Categories)...)),
		validation.Field(&p.WorkflowStatus, validation.Required, validation.In(WorkflowDraft, WorkflowPublished)),
		validation.Field(&p.Tags, validation.Length(0, MaxTags)),
		validation.Field(&p.ReadingTime, validation.Min(1)),
	); err != nil {
		return err
	}
	return p.Author.Validate()
}

// Validate checks the author against the fixed roster.
func (a Author) Validate() error {
	names := make([]interface{}, len(Authors))
	for i, known := range Authors {
		names[i] = known.Name
	}
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.In(names...)),
		validation.Field(&a.Image, validation.Required),
	)
}

// Audit recomputes the validation flags from the record contents.
func (p *BlogPost) Audit() {
	p.Flags = Flags{
		HasRequiredFields: p.Title != "" && p.Slug != "" && p.Excerpt != "" && p.Category != "" && p.Body != "",
		HasValidSEO:       p.SEOTitle != "" && len([]rune(p.SEOTitle)) <= 60 && p.SEODescription != "" && len([]rune(p.SEODescription)) <= 160 && p.FocusKeyword != "",
		HasValidImages:    p.FeaturedImage != "" && p.AltText != "",
		ReadyForPublish:   p.WorkflowStatus == WorkflowPublished,
	}
}

func toAny(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
