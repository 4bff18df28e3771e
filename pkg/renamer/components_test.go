package renamer

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		path string
		dir  string
		stem string
		ext  string
	}{
		{"simple name", "photo.jpg", "", "photo", "jpg"},
		{"no extension", "README", "", "README", ""},
		{"dotfile", ".gitignore", "", ".gitignore", ""},
		{"dotfile with extension", ".config.yaml", "", ".config", "yaml"},
		{"multiple dots", "archive.tar.gz", "", "archive.tar", "gz"},
		{"trailing dot", "file.", "", "file", ""},
		{"relative dir", "photos/trip/IMG1.png", "photos/trip/", "IMG1", "png"},
		{"absolute dir", "/data/docs/report.pdf", "/data/docs/", "report", "pdf"},
		{"dot in dir only", "v1.2/readme", "v1.2/", "readme", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Split(tt.path)
			if c.Dir != tt.dir {
				t.Errorf("Dir: expected %q, got %q", tt.dir, c.Dir)
			}
			if c.Stem != tt.stem {
				t.Errorf("Stem: expected %q, got %q", tt.stem, c.Stem)
			}
			if c.Ext != tt.ext {
				t.Errorf("Ext: expected %q, got %q", tt.ext, c.Ext)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		c        Components
		expected string
	}{
		{"with extension", Components{Stem: "photo", Ext: "jpg"}, "photo.jpg"},
		{"without extension", Components{Stem: "README"}, "README"},
		{"empty extension collapses", Components{Stem: "file", Ext: ""}, "file"},
		{"dotted stem", Components{Stem: "archive.tar", Ext: "gz"}, "archive.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Join(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	c := Components{Dir: "photos/trip/", Stem: "IMG1", Ext: "png"}
	if got := c.JoinPath(); got != "photos/trip/IMG1.png" {
		t.Errorf("Expected %q, got %q", "photos/trip/IMG1.png", got)
	}

	// 拆分后原样拼回
	paths := []string{"photo.jpg", ".gitignore", "a/b/archive.tar.gz", "/abs/README"}
	for _, p := range paths {
		if got := Split(p).JoinPath(); got != p {
			t.Errorf("Round trip of %q: got %q", p, got)
		}
	}
}
