// Package infer derives blog post metadata from a raw title and body using
// keyword heuristics. Every function is deterministic and total: each branch
// degrades to a fixed default rather than failing.
package infer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aviatorstc/bloggen/internal/models"
)

var (
	slugStripRe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	hyphenRunRe  = regexp.MustCompile(`-+`)
	markupRe     = regexp.MustCompile("[#*`\\[\\]()]")
	keywordRe    = regexp.MustCompile(`\b(?:pilot|aviation|aircraft|flight|dgca|cpl|atpl)\b`)
	focusWordRe  = regexp.MustCompile(`\b(?:pilot|aviation|aircraft|flight|dgca|cpl|atpl|training)\b`)
	ctaMarkerRe  = regexp.MustCompile(`<!-- CTA_\w+_INTEGRATION -->`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// SlugFallback is used when a title yields no slug characters at all; an
// empty slug would be unusable as a filename.
const SlugFallback = "untitled-post"

// Options tunes the inferencer. Zero values fall back to defaults.
type Options struct {
	ExcerptMaxLen   int    // max excerpt length in runes, default 160
	MaxTags         int    // tag cap, default 5
	ReadingSpeedWPM int    // default 225
	Year            int    // suffix year for truncated SEO titles, default current year
	Brand           string // brand name in SEO description templates
}

const (
	defaultExcerptMaxLen   = 160
	defaultMaxTags         = 5
	defaultReadingSpeedWPM = 225
	defaultBrand           = "Aviators Training Centre"
)

func (o Options) withDefaults() Options {
	if o.ExcerptMaxLen <= 0 {
		o.ExcerptMaxLen = defaultExcerptMaxLen
	}
	if o.MaxTags <= 0 {
		o.MaxTags = defaultMaxTags
	}
	if o.ReadingSpeedWPM <= 0 {
		o.ReadingSpeedWPM = defaultReadingSpeedWPM
	}
	if o.Year <= 0 {
		o.Year = time.Now().Year()
	}
	if o.Brand == "" {
		o.Brand = defaultBrand
	}
	return o
}

// Inferencer holds the tuning options. It is stateless beyond them and safe
// to reuse across documents.
type Inferencer struct {
	opts Options
}

// New returns an Inferencer with defaults applied over opts.
func New(opts Options) *Inferencer {
	return &Inferencer{opts: opts.withDefaults()}
}

// Slug converts a title into a lowercase hyphenated identifier containing
// only [a-z0-9-], with no leading, trailing, or doubled hyphens.
func (inf *Inferencer) Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return SlugFallback
	}
	return s
}

// Excerpt strips markup punctuation and greedily concatenates whole
// sentences while the running length stays under the configured max. The
// result never cuts mid-sentence.
func (inf *Inferencer) Excerpt(content string) string {
	clean := markupRe.ReplaceAllString(content, "")
	if strings.TrimSpace(clean) == "" {
		return ""
	}
	var b strings.Builder
	for _, sentence := range strings.Split(clean, ".") {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		if utf8.RuneCountInString(b.String())+utf8.RuneCountInString(sentence) >= inf.opts.ExcerptMaxLen {
			break
		}
		b.WriteString(sentence)
		b.WriteString(".")
	}
	return strings.TrimSpace(b.String())
}

// Categorize runs the category decision list over lowercased title+content.
func (inf *Inferencer) Categorize(title, content string) string {
	text := strings.ToLower(title + " " + content)
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}
	return defaultCategory
}

// Tags scans the aviation vocabulary in order for substring presence, then
// supplements with regex-matched keywords in first-occurrence order, up to
// max entries with no duplicates.
func (inf *Inferencer) Tags(title, content string, max int) []string {
	if max <= 0 {
		max = inf.opts.MaxTags
	}
	text := strings.ToLower(title + " " + content)
	seen := make(map[string]struct{})
	var tags []string
	for _, term := range tagVocabulary {
		if len(tags) >= max {
			break
		}
		if strings.Contains(text, term) {
			seen[term] = struct{}{}
			tags = append(tags, term)
		}
	}
	for _, word := range keywordRe.FindAllString(text, -1) {
		if len(tags) >= max {
			break
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tags = append(tags, word)
	}
	return tags
}

// ReadingTime estimates minutes to read at the configured speed, floor 1.
func (inf *Inferencer) ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + inf.opts.ReadingSpeedWPM - 1) / inf.opts.ReadingSpeedWPM
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// WordCount counts whitespace-separated words.
func (inf *Inferencer) WordCount(content string) int {
	return len(strings.Fields(content))
}

// SEOTitle passes titles of 60 runes or fewer through unchanged; longer
// titles are truncated to 50 runes with an ellipsis and the generation year.
func (inf *Inferencer) SEOTitle(title string) string {
	if utf8.RuneCountInString(title) <= 60 {
		return title
	}
	r := []rune(title)
	return fmt.Sprintf("%s... %d", string(r[:50]), inf.opts.Year)
}

// SEODescription prefers a fitting excerpt, then a templated sentence from
// the title, then a generic fallback.
func (inf *Inferencer) SEODescription(excerpt, title string) string {
	if excerpt != "" && utf8.RuneCountInString(excerpt) <= 160 {
		return excerpt
	}
	if title != "" {
		s := fmt.Sprintf("Learn about %s. Expert guidance from %s for aspiring pilots and aviation professionals.",
			strings.ToLower(title), inf.opts.Brand)
		return truncateRunes(s, 160)
	}
	return fmt.Sprintf("Expert aviation training and guidance from %s. Professional pilot courses and career development.", inf.opts.Brand)
}

// FocusKeyword returns the first phrase from the priority list found in
// lowercased title+content, else the first regex-matched aviation word, else
// a fixed default.
func (inf *Inferencer) FocusKeyword(title, content string) string {
	text := strings.ToLower(title + " " + content)
	for _, phrase := range focusKeywords {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	if word := focusWordRe.FindString(text); word != "" {
		return word
	}
	return defaultFocusKeyword
}

// SelectAuthor runs the author decision list over the lowercased body.
func (inf *Inferencer) SelectAuthor(content string) models.Author {
	text := strings.ToLower(content)
	for _, rule := range authorRules {
		if containsAny(text, rule.keywords) {
			return rule.author
		}
	}
	return models.AuthorAman
}

// StructuredData derives the article type, resource type, and educational
// level from the body, and formats the reading time as an ISO-8601 duration.
func (inf *Inferencer) StructuredData(content string, readingTime int) models.StructuredData {
	text := strings.ToLower(content)

	articleType, resourceType := "Educational", "Article"
	for _, rule := range articleTypeRules {
		if containsAny(text, rule.keywords) {
			articleType, resourceType = rule.articleType, rule.resourceType
			break
		}
	}

	level := "Intermediate"
	for _, rule := range levelRules {
		if containsAny(text, rule.keywords) {
			level = rule.level
			break
		}
	}

	return models.StructuredData{
		ArticleType:          articleType,
		LearningResourceType: resourceType,
		EducationalLevel:     level,
		TimeRequired:         fmt.Sprintf("PT%dM", readingTime),
	}
}

// CleanBody strips CTA integration markers, normalises line endings, and
// collapses runs of blank lines.
func (inf *Inferencer) CleanBody(content string) string {
	out := ctaMarkerRe.ReplaceAllString(content, "")
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
