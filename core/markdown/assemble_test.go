package markdown

import (
	"errors"
	"testing"

	"github.com/zakkhoyt/linkmark/core"
)

func TestLink(t *testing.T) {
	got, err := Link("Widget Pro", "https://www.amazon.com/dp/B01ABCDEFG")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[Widget Pro](https://www.amazon.com/dp/B01ABCDEFG)" {
		t.Errorf("got %q", got)
	}
}

func TestLinkMissingTarget(t *testing.T) {
	_, err := Link("Widget Pro", "")
	if !errors.Is(err, core.ErrMissingTarget) {
		t.Errorf("error = %v, want ErrMissingTarget", err)
	}
}

func TestImage(t *testing.T) {
	got, err := Image("Widget", "https://cdn.example/img.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if got != "![Widget](https://cdn.example/img.jpg)" {
		t.Errorf("got %q", got)
	}
}

func TestLinkedImage(t *testing.T) {
	got, err := LinkedImage("Widget", "https://cdn.example/img.jpg", "https://shop.example/p")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[![Widget](https://cdn.example/img.jpg)](https://shop.example/p)" {
		t.Errorf("got %q", got)
	}
}

func TestCombined(t *testing.T) {
	const (
		title = "Widget"
		url   = "https://shop.example/p"
		img   = "https://cdn.example/img.jpg"
	)

	testCases := []struct {
		name   string
		format CombinedFormat
		want   string
	}{
		{
			name:   "inline",
			format: FormatInline,
			want:   "[![Widget](https://cdn.example/img.jpg)](https://shop.example/p) [Widget](https://shop.example/p)",
		},
		{
			name:   "block",
			format: FormatBlock,
			want:   "[![Widget](https://cdn.example/img.jpg)](https://shop.example/p)\n\n[Widget](https://shop.example/p)",
		},
		{
			name:   "table",
			format: FormatTable,
			want:   "| [![Widget](https://cdn.example/img.jpg)](https://shop.example/p) | [Widget](https://shop.example/p) |",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Combined(title, url, img, tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCombinedWithoutImage(t *testing.T) {
	got, err := Combined("Widget", "https://shop.example/p", "", FormatTable)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[Widget](https://shop.example/p)" {
		t.Errorf("got %q", got)
	}
}
