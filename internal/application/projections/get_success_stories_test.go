package projections

import (
	"context"
	"strings"
	"testing"

	"prodojo/internal/domain/successstory"
	"prodojo/internal/domain/tip"
)

// mockStoryList implements the mock StoryStoreForList for testing.
// PRE: valid parameters
// POST: returns expected result
type mockStoryList struct {
	stories []successstory.Story
}

func (m *mockStoryList) List(ctx context.Context) ([]successstory.Story, error) {
	return m.stories, nil
}

// mockTipList implements the mock TipStoreForList for testing.
// PRE: valid parameters
// POST: returns expected result
type mockTipList struct {
	tips []tip.Tip
}

func (m *mockTipList) List(ctx context.Context) ([]tip.Tip, error) {
	return m.tips, nil
}

// TestQueryGetSuccessStories_RendersMarkdown tests bio rendering.
func TestQueryGetSuccessStories_RendersMarkdown(t *testing.T) {
	store := &mockStoryList{stories: []successstory.Story{
		{ID: "s1", Name: "Alex Cruz", Promotion: "NWF", Bio: "Debuted in **2019** after two years of training."},
		{ID: "s2", Name: "Sam Reed", Promotion: "AJW", Bio: ""},
	}}

	results, err := QueryGetSuccessStories(context.Background(), store)
	if err != nil {
		t.Fatalf("QueryGetSuccessStories() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d stories, want 2", len(results))
	}
	if !strings.Contains(results[0].BioHTML, "<strong>2019</strong>") {
		t.Errorf("got bio html %q, want bold 2019", results[0].BioHTML)
	}
	if results[1].BioHTML != "" {
		t.Errorf("empty bio rendered to %q, want empty", results[1].BioHTML)
	}
}

// TestQueryGetTips_RendersMarkdown tests description rendering.
func TestQueryGetTips_RendersMarkdown(t *testing.T) {
	store := &mockTipList{tips: []tip.Tip{
		{ID: "t1", Title: "Bump safely", Description: "Always *tuck your chin*."},
	}}

	results, err := QueryGetTips(context.Background(), store)
	if err != nil {
		t.Fatalf("QueryGetTips() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d tips, want 1", len(results))
	}
	if !strings.Contains(results[0].DescriptionHTML, "<em>tuck your chin</em>") {
		t.Errorf("got description html %q, want emphasized text", results[0].DescriptionHTML)
	}
}

// TestRenderMarkdown_EscapesRawHTML confirms unsafe HTML in markdown
// source is not passed through to the rendered output.
func TestRenderMarkdown_EscapesRawHTML(t *testing.T) {
	out := renderMarkdown("hello <script>alert(1)</script>")
	if strings.Contains(out, "<script>") {
		t.Errorf("raw script tag survived rendering: %q", out)
	}
}
