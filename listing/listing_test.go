package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blogtools/blogbuild/post"
)

func TestFragment(t *testing.T) {
	rec := post.Record{
		Slug:        "my-first-post",
		Title:       "My First Post",
		Date:        "March 05, 2024",
		Description: "An intro",
	}

	frag := Fragment(rec)

	for _, want := range []string{
		`href="/blog/my-first-post/"`,
		">My First Post</a>",
		`<span class="article-date">March 05, 2024</span>`,
		">An intro</p>",
	} {
		if !strings.Contains(frag, want) {
			t.Errorf("fragment missing %q:\n%s", want, frag)
		}
	}
}

func TestFragment_EmptyDescriptionOmitsParagraph(t *testing.T) {
	frag := Fragment(post.Record{Slug: "s", Title: "T", Date: "D"})
	if strings.Contains(frag, "<p") {
		t.Errorf("empty description rendered a paragraph:\n%s", frag)
	}
}

func TestRender_SortsNewestFirst(t *testing.T) {
	records := []post.Record{
		{Slug: "january", Title: "January", Date: "January 01, 2024"},
		{Slug: "june", Title: "June", Date: "June 01, 2024"},
	}

	out := Render(records)

	junePos := strings.Index(out, "june")
	januaryPos := strings.Index(out, "january")
	if junePos == -1 || januaryPos == -1 {
		t.Fatalf("both posts must appear:\n%s", out)
	}
	if junePos > januaryPos {
		t.Errorf("June post should be listed before January post:\n%s", out)
	}
}

func TestRender_ZeroPosts(t *testing.T) {
	out := Render(nil)
	if out != "<p>No blog posts yet. Check back soon!</p>" {
		t.Errorf("zero posts rendered %q", out)
	}
}

func TestUpdate_ReplacesOnlyMarkerRegion(t *testing.T) {
	dir := t.TempDir()
	listingPath := filepath.Join(dir, "index.html")

	document := `<html><body>
<header>kept</header>
<div id="blog-list"><p>No blog posts yet. Check back soon!</p>
          </div>
<footer>also kept</footer>
</body></html>`
	if err := os.WriteFile(listingPath, []byte(document), 0644); err != nil {
		t.Fatal(err)
	}

	records := []post.Record{{Slug: "hello", Title: "Hello", Date: "March 05, 2024"}}
	if err := Update(listingPath, records); err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated, err := os.ReadFile(listingPath)
	if err != nil {
		t.Fatal(err)
	}
	got := string(updated)

	if !strings.Contains(got, "<header>kept</header>") || !strings.Contains(got, "<footer>also kept</footer>") {
		t.Errorf("content outside the marker region was disturbed:\n%s", got)
	}
	if !strings.Contains(got, `href="/blog/hello/"`) {
		t.Errorf("post entry missing:\n%s", got)
	}
	if strings.Contains(got, "No blog posts yet") {
		t.Errorf("placeholder not replaced:\n%s", got)
	}
}

func TestUpdate_MatchStopsAtNearestClosingDiv(t *testing.T) {
	dir := t.TempDir()
	listingPath := filepath.Join(dir, "index.html")

	// The match runs to the nearest later </div>, not a balanced one;
	// the sibling div after the region must survive.
	document := `<div id="blog-list">old</div><div class="sibling">stays</div>`
	if err := os.WriteFile(listingPath, []byte(document), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Update(listingPath, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated, _ := os.ReadFile(listingPath)
	got := string(updated)

	if !strings.Contains(got, `<div class="sibling">stays</div>`) {
		t.Errorf("match consumed past the nearest closing div:\n%s", got)
	}
	if strings.Contains(got, ">old<") {
		t.Errorf("old region content survived:\n%s", got)
	}
}
