package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/aviatorstc/bloggen/internal"
	pkgconfig "github.com/aviatorstc/bloggen/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()

	path := cmd.String("config")
	if _, err := os.Stat(path); err != nil {
		// A missing default config file is fine; an explicitly named one is not.
		if os.IsNotExist(err) && !cmd.IsSet("config") {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file: %w", err)
	}

	if err := pkgconfig.Load(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if out := cmd.String("output"); out != "" {
		cfg.Content.OutputDir = out
	}

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("at least one input document is required")
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithInputs(inputs...),
	}
	if cmd.Bool("force") {
		opts = append(opts, internal.WithOverwrite())
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	items, err := internal.ListPosts(ctx, internal.WithConfig(cfg))
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%-40s %-24s %2dm  %s\n", item.Slug, item.Category, item.ReadingTime, item.Title)
	}
	return nil
}

func runPreview(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slug := cmd.Args().First()
	if slug == "" {
		return fmt.Errorf("a post slug is required")
	}
	html, err := internal.Preview(ctx, slug, internal.WithConfig(cfg))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(html)
	return err
}

func main() {
	cmd := &cli.Command{
		Name:  "bloggen",
		Usage: "Generate markdown blog posts with inferred metadata and YAML frontmatter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("BLOGGEN_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate posts from JSON input documents",
				ArgsUsage: "<input.json>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "Override the configured output directory",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing post with the same slug",
					},
				},
				Action: runGenerate,
			},
			{
				Name:   "list",
				Usage:  "List generated posts in the output directory",
				Action: runList,
			},
			{
				Name:      "preview",
				Usage:     "Render a generated post body to HTML",
				ArgsUsage: "<slug>",
				Action:    runPreview,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
