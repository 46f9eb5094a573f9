package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coachsite/internal/markdown"
)

// CoachingPage is the rendered life-coaching content page.
type CoachingPage struct {
	Title   string
	Tagline string
	Content string
}

type CoachingService struct {
	contentDir string
	parser     *markdown.Parser
}

func NewCoachingService(contentDir string) *CoachingService {
	return &CoachingService{
		contentDir: contentDir,
		parser:     markdown.NewParser(),
	}
}

// Page loads and renders a markdown content page by slug. Pages are
// re-read on every request so content edits show up without a restart.
func (s *CoachingService) Page(slug string) (*CoachingPage, error) {
	path := filepath.Join(s.contentDir, slug+".md")
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content page %s: %w", slug, err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content page %s: %w", slug, err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		// Generate title from slug
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "_", " "))
	}

	tagline, _ := meta["tagline"].(string)

	return &CoachingPage{
		Title:   title,
		Tagline: tagline,
		Content: string(html),
	}, nil
}
