// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aviatorstc/bloggen/internal/compose"
	"github.com/aviatorstc/bloggen/internal/infer"
	"github.com/aviatorstc/bloggen/internal/postservice"
	"github.com/aviatorstc/bloggen/internal/storage"
)

// Run processes each input document in one linear pass: decode, assemble,
// render, write.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("output_dir", cfg.Content.OutputDir),
		slog.Int("max_tags", cfg.Content.MaxTags),
		slog.Bool("overwrite", app.overwrite || cfg.Content.Overwrite),
		slog.String("log_level", cfg.App.LogLevel.String()))

	svc, err := app.service()
	if err != nil {
		return err
	}

	if len(app.inputs) == 0 {
		return fmt.Errorf("no input documents given")
	}

	for _, path := range app.inputs {
		doc, err := loadDocument(path)
		if err != nil {
			return err
		}
		res, err := svc.Generate(ctx, *doc)
		if err != nil {
			return fmt.Errorf("generate %s: %w", path, err)
		}
		logger.Info("Blog post created",
			slog.String("file", res.Path),
			slog.Int("word_count", res.Post.WordCount),
			slog.Int("reading_time", res.Post.ReadingTime),
			slog.String("category", res.Post.Category),
			slog.String("tags", strings.Join(res.Post.Tags, ", ")),
			slog.String("focus_keyword", res.Post.FocusKeyword))
	}

	return nil
}

// ListPosts summarises every generated post in the output directory.
func ListPosts(ctx context.Context, opts ...Option) ([]postservice.PostSummary, error) {
	app, err := newApplication(opts)
	if err != nil {
		return nil, err
	}
	svc, err := app.service()
	if err != nil {
		return nil, err
	}
	return svc.ListPosts(ctx)
}

// Preview renders the body of a generated post to HTML.
func Preview(ctx context.Context, slug string, opts ...Option) ([]byte, error) {
	app, err := newApplication(opts)
	if err != nil {
		return nil, err
	}
	svc, err := app.service()
	if err != nil {
		return nil, err
	}
	return svc.Preview(ctx, slug)
}

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.now == nil {
		app.now = time.Now
	}
	return app, nil
}

// service builds the post service from the application state.
func (a *application) service() (*postservice.Service, error) {
	cfg := a.config

	store, err := storage.NewFS(cfg.Content.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	inf := infer.New(infer.Options{
		ExcerptMaxLen:   cfg.Content.ExcerptMaxLen,
		MaxTags:         cfg.Content.MaxTags,
		ReadingSpeedWPM: cfg.Content.ReadingSpeedWPM,
		Year:            a.now().Year(),
		Brand:           cfg.Content.Brand,
	})
	asm := compose.New(inf, a.now)

	overwrite := a.overwrite || cfg.Content.Overwrite
	return postservice.NewService(store, asm, overwrite), nil
}

// loadDocument decodes one JSON input document.
func loadDocument(path string) (*compose.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	var doc compose.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode input %s: %w", path, err)
	}
	return &doc, nil
}
