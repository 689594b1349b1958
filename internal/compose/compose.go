// Package compose assembles a fully populated blog post record from a
// partial caller-supplied document plus inferred defaults. Explicitly
// supplied, non-empty fields always win over inference.
package compose

import (
	"fmt"
	"time"

	"github.com/aviatorstc/bloggen/internal/infer"
	"github.com/aviatorstc/bloggen/internal/models"
)

// Slug wraps the nested slug shape used by structured inputs.
type Slug struct {
	Current string `json:"current"`
}

// Document is the partial caller-supplied record. Any subset of fields may
// be present; the body can arrive as a flat content string or a block tree.
type Document struct {
	Title              string                 `json:"title"`
	Content            string                 `json:"content"`
	Body               []Block                `json:"body"`
	Slug               Slug                   `json:"slug"`
	Excerpt            string                 `json:"excerpt"`
	Author             *models.Author         `json:"author"`
	Category           string                 `json:"category"`
	Tags               []string               `json:"tags"`
	FeaturedImage      string                 `json:"featuredImage"`
	AltText            string                 `json:"altText"`
	Featured           bool                   `json:"featured"`
	PublishedAt        string                 `json:"publishedAt"`
	SEOTitle           string                 `json:"seoTitle"`
	SEODescription     string                 `json:"seoDescription"`
	FocusKeyword       string                 `json:"focusKeyword"`
	AdditionalKeywords []string               `json:"additionalKeywords"`
	ReadingTime        int                    `json:"readingTime"`
	WorkflowStatus     string                 `json:"workflowStatus"`
	StructuredData     *models.StructuredData `json:"structuredData"`
	SEOScore           int                    `json:"seoScore"`
}

// DefaultTitle is used when the caller supplies no title at all.
const DefaultTitle = "Untitled Blog Post"

const defaultSEOScore = 85

// Assembler merges caller documents with inferred defaults.
type Assembler struct {
	inf *infer.Inferencer
	now func() time.Time
}

// New returns an Assembler. A nil clock falls back to time.Now.
func New(inf *infer.Inferencer, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{inf: inf, now: now}
}

// Assemble produces the canonical record for one document. It fails only on
// malformed body blocks or on caller-supplied values outside the fixed enum
// sets; every inference degrades to a default instead.
func (a *Assembler) Assemble(doc Document) (*models.BlogPost, error) {
	content, err := doc.textSource().PlainText()
	if err != nil {
		return nil, err
	}

	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}

	slug := doc.Slug.Current
	if slug == "" {
		slug = a.inf.Slug(title)
	}

	excerpt := doc.Excerpt
	if excerpt == "" {
		excerpt = a.inf.Excerpt(content)
	}

	author := a.inf.SelectAuthor(content)
	if doc.Author != nil && doc.Author.Name != "" {
		author = *doc.Author
		if author.Image == "" {
			if known, ok := models.AuthorByName(author.Name); ok {
				author.Image = known.Image
			}
		}
	}

	category := doc.Category
	if category == "" {
		category = a.inf.Categorize(title, content)
	}

	tags := doc.Tags
	if len(tags) == 0 {
		tags = a.inf.Tags(title, content, 0)
	}

	featuredImage := doc.FeaturedImage
	if featuredImage == "" {
		featuredImage = fmt.Sprintf("/blog/%s-featured.jpg", slug)
	}
	altText := doc.AltText
	if altText == "" {
		altText = fmt.Sprintf("Featured image for %s", title)
	}

	publishedAt := doc.PublishedAt
	if publishedAt == "" {
		publishedAt = a.now().Format(time.RFC3339)
	}

	seoTitle := doc.SEOTitle
	if seoTitle == "" {
		seoTitle = a.inf.SEOTitle(title)
	}
	seoDescription := doc.SEODescription
	if seoDescription == "" {
		seoDescription = a.inf.SEODescription(excerpt, title)
	}
	focusKeyword := doc.FocusKeyword
	if focusKeyword == "" {
		focusKeyword = a.inf.FocusKeyword(title, content)
	}
	additionalKeywords := doc.AdditionalKeywords
	if len(additionalKeywords) == 0 {
		additionalKeywords = a.inf.Tags(title, content, 3)
	}

	inferredReadingTime := a.inf.ReadingTime(content)
	readingTime := doc.ReadingTime
	if readingTime <= 0 {
		readingTime = inferredReadingTime
	}

	workflowStatus := doc.WorkflowStatus
	if workflowStatus == "" {
		workflowStatus = models.WorkflowDraft
	}

	structuredData := a.inf.StructuredData(content, inferredReadingTime)
	if doc.StructuredData != nil {
		structuredData = *doc.StructuredData
	}

	seoScore := doc.SEOScore
	if seoScore == 0 {
		seoScore = defaultSEOScore
	}

	post := &models.BlogPost{
		Title:              title,
		Slug:               slug,
		Excerpt:            excerpt,
		Body:               a.inf.CleanBody(content),
		Author:             author,
		Category:           category,
		Tags:               tags,
		FeaturedImage:      featuredImage,
		AltText:            altText,
		Featured:           doc.Featured,
		PublishedAt:        publishedAt,
		SEOTitle:           seoTitle,
		SEODescription:     seoDescription,
		FocusKeyword:       focusKeyword,
		AdditionalKeywords: additionalKeywords,
		ReadingTime:        readingTime,
		WorkflowStatus:     workflowStatus,
		StructuredData:     structuredData,
		WordCount:          a.inf.WordCount(content),
		SEOScore:           seoScore,
		LastSEOCheck:       a.now().Format(time.RFC3339),
	}
	post.Audit()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("validate post: %w", err)
	}
	return post, nil
}
