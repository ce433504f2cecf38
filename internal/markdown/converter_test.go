package markdown

import (
	"strings"
	"testing"
)

func TestConvert_BasicElements(t *testing.T) {
	c := NewConverter()
	out, err := c.Convert([]byte("# Title\n\nSome *emphasis* here.\n"))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, ">Title</h1>") {
		t.Errorf("missing heading: %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("missing emphasis: %q", html)
	}
}

func TestConvert_GFMTable(t *testing.T) {
	c := NewConverter()
	out, err := c.Convert([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Errorf("GFM table not rendered: %q", out)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	c := NewConverter()
	src := []byte("## Repeatable\n\n- one\n- two\n")
	first, err := c.Convert(src)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Convert(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("conversion is not deterministic")
	}
}

func TestConvert_Empty(t *testing.T) {
	c := NewConverter()
	out, err := c.Convert(nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %q", out)
	}
}
