package projections

import (
	"bytes"
	"context"

	"prodojo/internal/domain/successstory"
	"prodojo/internal/domain/tip"

	"github.com/yuin/goldmark"
)

// StoryStoreForList defines the store interface needed by this projection.
type StoryStoreForList interface {
	List(ctx context.Context) ([]successstory.Story, error)
}

// TipStoreForList defines the store interface needed by this projection.
type TipStoreForList interface {
	List(ctx context.Context) ([]tip.Tip, error)
}

// RenderedStory is a success story with its markdown bio rendered to HTML.
type RenderedStory struct {
	successstory.Story
	BioHTML string `json:"bio_html"`
}

// RenderedTip is a training tip with its markdown description rendered to HTML.
type RenderedTip struct {
	tip.Tip
	DescriptionHTML string `json:"description_html"`
}

// QueryGetSuccessStories returns all stories with bios rendered from
// markdown. A bio that fails to render falls back to the raw text.
func QueryGetSuccessStories(ctx context.Context, store StoryStoreForList) ([]RenderedStory, error) {
	stories, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]RenderedStory, 0, len(stories))
	for _, s := range stories {
		results = append(results, RenderedStory{Story: s, BioHTML: renderMarkdown(s.Bio)})
	}
	return results, nil
}

// QueryGetTips returns all training tips with descriptions rendered from
// markdown.
func QueryGetTips(ctx context.Context, store TipStoreForList) ([]RenderedTip, error) {
	tips, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]RenderedTip, 0, len(tips))
	for _, t := range tips {
		results = append(results, RenderedTip{Tip: t, DescriptionHTML: renderMarkdown(t.Description)})
	}
	return results, nil
}

func renderMarkdown(source string) string {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}
