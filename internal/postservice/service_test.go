package postservice_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aviatorstc/bloggen/internal/apperr"
	"github.com/aviatorstc/bloggen/internal/compose"
	"github.com/aviatorstc/bloggen/internal/testutil"
)

func TestGenerate_WritesMarkdownFile(t *testing.T) {
	svc, dir := testutil.TestService(t, false)
	res, err := svc.Generate(context.Background(), compose.Document{
		Title:   "DGCA CPL Exam Guide",
		Content: "This covers exam preparation and flight training basics.",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Path != "dgca-cpl-exam-guide.md" {
		t.Errorf("path = %q", res.Path)
	}
	data, err := os.ReadFile(filepath.Join(dir, res.Path))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		t.Error("output missing frontmatter delimiter")
	}
	if !strings.Contains(s, "category: DGCA Exams") {
		t.Errorf("category not serialised:\n%s", s)
	}
	if !strings.Contains(s, "This covers exam preparation") {
		t.Error("body missing from output")
	}
}

func TestGenerate_NoClobberByDefault(t *testing.T) {
	svc, _ := testutil.TestService(t, false)
	doc := compose.Document{Title: "Same Slug", Content: "First version."}
	if _, err := svc.Generate(context.Background(), doc); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	_, err := svc.Generate(context.Background(), compose.Document{Title: "Same Slug", Content: "Second version."})
	if !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestGenerate_OverwriteEnabled(t *testing.T) {
	svc, dir := testutil.TestService(t, true)
	ctx := context.Background()
	if _, err := svc.Generate(ctx, compose.Document{Title: "Same Slug", Content: "First version."}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := svc.Generate(ctx, compose.Document{Title: "Same Slug", Content: "Second version here."}); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "same-slug.md"))
	if !strings.Contains(string(data), "Second version here.") {
		t.Error("overwrite did not replace content")
	}
}

func TestListPosts(t *testing.T) {
	svc, _ := testutil.TestService(t, false)
	ctx := context.Background()
	docs := []compose.Document{
		{Title: "Alpha Post", Content: "About the dgca exam."},
		{Title: "Beta Post", Content: "About weather and wind."},
	}
	for _, doc := range docs {
		if _, err := svc.Generate(ctx, doc); err != nil {
			t.Fatalf("Generate: %v", err)
		}
	}
	items, err := svc.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	bySlug := make(map[string]string)
	for _, item := range items {
		bySlug[item.Slug] = item.Category
	}
	if bySlug["alpha-post"] != "DGCA Exams" {
		t.Errorf("alpha-post category = %q", bySlug["alpha-post"])
	}
	if bySlug["beta-post"] != "Weather & Meteorology" {
		t.Errorf("beta-post category = %q", bySlug["beta-post"])
	}
}

func TestPreview(t *testing.T) {
	svc, _ := testutil.TestService(t, false)
	ctx := context.Background()
	if _, err := svc.Generate(ctx, compose.Document{
		Title:   "Preview Me",
		Content: "# Section\n\nParagraph text.",
	}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html, err := svc.Preview(ctx, "preview-me")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Errorf("preview HTML = %q", html)
	}
}

func TestPreview_NotFound(t *testing.T) {
	svc, _ := testutil.TestService(t, false)
	_, err := svc.Preview(context.Background(), "nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
