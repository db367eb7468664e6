package util

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome *emphasis* and a [link](https://example.com).\n\n- one\n- two")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	for _, want := range []string{"<h1>", "<em>emphasis</em>", `<a href="https://example.com">`, "<li>one</li>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderMarkdownGFMTable(t *testing.T) {
	html, err := RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Fatalf("GFM table not rendered:\n%s", html)
	}
}
