package site_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/dagaz/internal/site"
	"github.com/starford/dagaz/internal/testutil"
)

func TestRenderIndex_MissingTemplateIsFatal(t *testing.T) {
	root := testutil.SiteTree(t)
	if err := os.Remove(filepath.Join(root, "src/templates/index.html")); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFile(t, root, "src/markdowns/a.md", "# A\n")

	b := testutil.Builder(t, root, site.Options{})
	if _, err := b.Build(context.Background()); err == nil {
		t.Fatal("expected build to fail on missing template")
	}
}

func TestRenderIndex_TitlesAreEscaped(t *testing.T) {
	root := testutil.SiteTree(t)
	testutil.WriteFile(t, root, "src/markdowns/evil.md",
		"title: <script>alert(1)</script>\n\nharmless body\n")

	b := testutil.Builder(t, root, site.Options{})
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	index := readOutput(t, root, "index.html")
	if strings.Contains(index, "<script>alert(1)</script>") {
		t.Error("title was not escaped in index")
	}
	if !strings.Contains(index, "&lt;script&gt;") {
		t.Errorf("expected escaped title, got %q", index)
	}
}

func TestRenderIndex_BodyHTMLPreserved(t *testing.T) {
	root := testutil.SiteTree(t)
	testutil.WriteFile(t, root, "src/markdowns/a.md", "title: A\n\n**bold**\n")

	b := testutil.Builder(t, root, site.Options{})
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	index := readOutput(t, root, "index.html")
	if !strings.Contains(index, "<strong>bold</strong>") {
		t.Errorf("rendered body not embedded: %q", index)
	}
}

func TestRenderIndex_CustomTemplateName(t *testing.T) {
	root := testutil.SiteTree(t)
	testutil.WriteFile(t, root, "src/templates/listing.html",
		`count={{len .Documents}}`)
	testutil.WriteFile(t, root, "src/markdowns/a.md", "# A\n")

	b := testutil.Builder(t, root, site.Options{IndexTemplate: "listing.html"})
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := readOutput(t, root, "index.html"); got != "count=1" {
		t.Errorf("index = %q", got)
	}
}
