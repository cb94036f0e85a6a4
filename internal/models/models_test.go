package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"News", "news"},
		{"Hello World", "hello-world"},
		{"Go  Tips", "go--tips"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	p := Post{
		ID:      7,
		Title:   "Hello",
		Content: "<p>Body</p>",
		Excerpt: "<p>Short</p>",
		Date:    "2024-05-01T10:00:00",
		Status:  PostStatusPublish,
		Slug:    "hello",
		Tags:    []int{3},
	}

	got := Summarize(p)
	want := PostSummary{Title: "Hello", Excerpt: "<p>Short</p>", Content: "<p>Body</p>", Slug: "hello", Date: "2024-05-01T10:00:00"}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}
