// Package render serialises blog post records into YAML-frontmatter markdown
// and parses generated files back.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/aviatorstc/bloggen/internal/models"
)

// Frontmatter mirrors the frontmatter block of a generated post, in the
// exact key order the file is written with.
type Frontmatter struct {
	Title              string                `yaml:"title"`
	Date               string                `yaml:"date"`
	Excerpt            string                `yaml:"excerpt"`
	Category           string                `yaml:"category"`
	CoverImage         string                `yaml:"coverImage"`
	Author             models.Author         `yaml:"author"`
	Featured           bool                  `yaml:"featured"`
	Tags               []string              `yaml:"tags"`
	SEOTitle           string                `yaml:"seoTitle"`
	SEODescription     string                `yaml:"seoDescription"`
	FocusKeyword       string                `yaml:"focusKeyword"`
	AdditionalKeywords []string              `yaml:"additionalKeywords"`
	ReadingTime        int                   `yaml:"readingTime"`
	WordCount          int                   `yaml:"wordCount"`
	WorkflowStatus     string                `yaml:"workflowStatus"`
	StructuredData     models.StructuredData `yaml:"structuredData"`
}

// FrontmatterOf projects the serialised subset of a post.
func FrontmatterOf(post *models.BlogPost) Frontmatter {
	return Frontmatter{
		Title:              post.Title,
		Date:               post.PublishedAt,
		Excerpt:            post.Excerpt,
		Category:           post.Category,
		CoverImage:         post.FeaturedImage,
		Author:             post.Author,
		Featured:           post.Featured,
		Tags:               post.Tags,
		SEOTitle:           post.SEOTitle,
		SEODescription:     post.SEODescription,
		FocusKeyword:       post.FocusKeyword,
		AdditionalKeywords: post.AdditionalKeywords,
		ReadingTime:        post.ReadingTime,
		WordCount:          post.WordCount,
		WorkflowStatus:     post.WorkflowStatus,
		StructuredData:     post.StructuredData,
	}
}

// Marshal renders a post as a frontmatter block followed by a blank line and
// the body. Values go through a real YAML encoder, so embedded quotes and
// colons are escaped instead of corrupting the frontmatter.
func Marshal(post *models.BlogPost) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FrontmatterOf(post)); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close frontmatter encoder: %w", err)
	}

	buf.WriteString("---\n\n")
	buf.WriteString(post.Body)
	if !strings.HasSuffix(post.Body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Parse is the symmetric reader for Marshal output: it splits a generated
// file into its frontmatter and body.
func Parse(data []byte) (*Frontmatter, string, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return &fm, strings.TrimLeft(string(body), "\n\r"), nil
}

// Filename returns the output file name for a slug.
func Filename(slug string) string {
	return slug + ".md"
}
