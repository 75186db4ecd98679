package compose

import (
	"reflect"
	"testing"
)

func TestImageURL(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		opts ImageOptions
		want string
	}{
		{
			name: "width height and autocrop",
			id:   "ABC1234567",
			opts: ImageOptions{Width: 800, Height: 600, AutoCrop: true},
			want: "https://m.media-amazon.com/images/I/ABC1234567._SX800_SY600_AC_.jpg",
		},
		{
			name: "no size options applies default square side",
			id:   "ABC1234567",
			opts: ImageOptions{},
			want: "https://m.media-amazon.com/images/I/ABC1234567._SL500_.jpg",
		},
		{
			name: "square side ignored when width given",
			id:   "ABC1234567",
			opts: ImageOptions{Width: 300, SquareSide: 1000},
			want: "https://m.media-amazon.com/images/I/ABC1234567._SX300_.jpg",
		},
		{
			name: "default quality omitted",
			id:   "ABC1234567",
			opts: ImageOptions{SquareSide: 200, Quality: 95},
			want: "https://m.media-amazon.com/images/I/ABC1234567._SL200_.jpg",
		},
		{
			name: "non default quality included after size",
			id:   "ABC1234567",
			opts: ImageOptions{SquareSide: 200, Quality: 70},
			want: "https://m.media-amazon.com/images/I/ABC1234567._SL200_QL70_.jpg",
		},
		{
			name: "custom host and format",
			id:   "ABC1234567",
			opts: ImageOptions{SquareSide: 500, Host: "images.example-cdn.net", Format: "png"},
			want: "https://images.example-cdn.net/images/I/ABC1234567._SL500_.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImageURL(tc.id, tc.opts); got != tc.want {
				t.Errorf("ImageURL = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseImageURLRoundTrip(t *testing.T) {
	url := ImageURL("ABC1234567", ImageOptions{Width: 800, Height: 600, AutoCrop: true})
	spec := ParseImageURL(url)
	if spec == nil {
		t.Fatalf("ParseImageURL(%q) = nil", url)
	}
	if spec.ID != "ABC1234567" || spec.Width != 800 || spec.Height != 600 || !spec.AutoCrop || spec.Format != "jpg" {
		t.Errorf("round trip mismatch: %+v", spec)
	}
}

func TestParseImageURL(t *testing.T) {
	t.Run("plain URL without modifiers", func(t *testing.T) {
		spec := ParseImageURL("https://m.media-amazon.com/images/I/71abcDEFgh.jpg")
		if spec == nil {
			t.Fatal("expected spec")
		}
		if spec.ID != "71abcDEFgh" || spec.Format != "jpg" || len(spec.RawModifiers) != 0 {
			t.Errorf("got %+v", spec)
		}
	})

	t.Run("unrecognized tokens preserved raw", func(t *testing.T) {
		spec := ParseImageURL("https://m.media-amazon.com/images/I/71abcDEFgh._SL500_CR0,0,300,300_.jpg")
		if spec == nil {
			t.Fatal("expected spec")
		}
		if spec.SquareSide != 500 {
			t.Errorf("square side = %d, want 500", spec.SquareSide)
		}
		want := []string{"SL500", "CR0,0,300,300"}
		if !reflect.DeepEqual(spec.RawModifiers, want) {
			t.Errorf("raw modifiers = %v, want %v", spec.RawModifiers, want)
		}
	})

	t.Run("non CDN URL yields nil", func(t *testing.T) {
		if spec := ParseImageURL("https://example.com/photo.jpg"); spec != nil {
			t.Errorf("expected nil, got %+v", spec)
		}
	})
}
