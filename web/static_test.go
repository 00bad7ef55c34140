package web

import "testing"

func TestGetContentType(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"css/landing.css", "text/css; charset=utf-8"},
		{"js/app.js", "application/javascript"},
		{"img/logo.svg", "image/svg+xml"},
		{"img/logo.png", "image/png"},
		{"fonts/x.woff2", "font/woff2"},
		{"README", ""},
	}

	for _, tc := range testCases {
		if got := getContentType(tc.path); got != tc.expected {
			t.Errorf("getContentType(%q) = %q, want %q", tc.path, got, tc.expected)
		}
	}
}

func TestEmbeddedStylesheet(t *testing.T) {
	content, err := staticFiles.ReadFile("static/css/landing.css")
	if err != nil {
		t.Fatalf("stylesheet should be embedded: %v", err)
	}
	if len(content) == 0 {
		t.Error("embedded stylesheet is empty")
	}
}
