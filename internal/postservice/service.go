// Package postservice coordinates assembly, validation, rendering, and the
// file write for blog posts.
package postservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aviatorstc/bloggen/internal/apperr"
	"github.com/aviatorstc/bloggen/internal/compose"
	"github.com/aviatorstc/bloggen/internal/markdown"
	"github.com/aviatorstc/bloggen/internal/models"
	"github.com/aviatorstc/bloggen/internal/render"
	"github.com/aviatorstc/bloggen/internal/storage"
)

// Result describes one generated post.
type Result struct {
	Path string           // file name under the output directory
	Post *models.BlogPost // the assembled record as written
}

// PostSummary is a lightweight item describing an already-generated post.
type PostSummary struct {
	Path        string    `json:"path"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ReadingTime int       `json:"readingTime"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Service wires the assembler to the output directory.
type Service struct {
	store     storage.Provider
	asm       *compose.Assembler
	overwrite bool
}

// NewService creates a post service. With overwrite false, generating a slug
// that already has a file fails with apperr.ErrAlreadyExists.
func NewService(store storage.Provider, asm *compose.Assembler, overwrite bool) *Service {
	return &Service{store: store, asm: asm, overwrite: overwrite}
}

// Generate runs one linear pass over a document: assemble, render, write.
func (s *Service) Generate(_ context.Context, doc compose.Document) (*Result, error) {
	post, err := s.asm.Assemble(doc)
	if err != nil {
		return nil, err
	}

	payload, err := render.Marshal(post)
	if err != nil {
		return nil, err
	}

	name := render.Filename(post.Slug)
	if !s.overwrite && s.store.Exists(name) {
		return nil, fmt.Errorf("%s: %w", name, apperr.ErrAlreadyExists)
	}
	if err := s.store.Write(name, payload); err != nil {
		return nil, err
	}

	return &Result{Path: name, Post: post}, nil
}

// ListPosts reads every generated file and summarises its frontmatter.
func (s *Service) ListPosts(_ context.Context) ([]PostSummary, error) {
	files, err := s.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]PostSummary, 0, len(files))
	for _, file := range files {
		data, err := s.store.Read(file.Path)
		if err != nil {
			return nil, err
		}
		fm, _, err := render.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file.Path, err)
		}
		out = append(out, PostSummary{
			Path:        file.Path,
			Slug:        strings.TrimSuffix(file.Path, ".md"),
			Title:       fm.Title,
			Category:    fm.Category,
			ReadingTime: fm.ReadingTime,
			UpdatedAt:   file.UpdatedAt,
		})
	}
	return out, nil
}

// Preview renders the body of a generated post to HTML.
func (s *Service) Preview(_ context.Context, slug string) ([]byte, error) {
	name := render.Filename(slug)
	if !s.store.Exists(name) {
		return nil, fmt.Errorf("%s: %w", name, apperr.ErrNotFound)
	}
	data, err := s.store.Read(name)
	if err != nil {
		return nil, err
	}
	_, body, err := render.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return markdown.ToHTML([]byte(body))
}
