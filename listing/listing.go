package listing

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/blogtools/blogbuild/post"
)

// regionPattern locates the generated span of the listing document:
// from the marker div to the nearest later closing div tag. No tag
// balancing is performed; a nested </div> inside the marker region
// ends the match early. This matching is part of the output contract
// and must not be made smarter.
var regionPattern = regexp.MustCompile(`(?s)<div id="blog-list">.*?</div>`)

const noPostsMessage = `<p>No blog posts yet. Check back soon!</p>`

const itemFormat = `
          <div class="view-list-item" style="margin-bottom: 1.5rem; padding-bottom: 1.5rem; border-bottom: 1px solid #e0e0e0;">
            <i class="far fa-file-alt pub-icon" aria-hidden="true"></i>
            <a href="/blog/%s/" style="font-size: 1.1rem; font-weight: 500;">%s</a>
            <div class="article-metadata" style="margin-top: 0.5rem;">
              <span class="article-date">%s</span>
            </div>
            %s
          </div>
`

// Fragment renders the listing entry for one post. The description
// paragraph is emitted only when non-empty.
func Fragment(rec post.Record) string {
	description := ""
	if rec.Description != "" {
		description = fmt.Sprintf(`<p style="margin-top: 0.5rem; color: #666;">%s</p>`, rec.Description)
	}
	return fmt.Sprintf(itemFormat, rec.Slug, rec.Title, rec.Date, description)
}

// Render assembles the full listing body: all posts sorted by date
// string descending (newest first), or a placeholder message when
// there are none. The sort is lexicographic, so it is chronological
// only while every date shares one format.
func Render(records []post.Record) string {
	if len(records) == 0 {
		return noPostsMessage
	}

	sorted := make([]post.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	var b strings.Builder
	for _, rec := range sorted {
		b.WriteString(Fragment(rec))
	}
	return b.String()
}

// Update rewrites the marker region of the listing document at
// listingPath with a freshly rendered post list, leaving the rest of
// the file untouched. Only the first matching region is replaced.
func Update(listingPath string, records []post.Record) error {
	data, err := os.ReadFile(listingPath)
	if err != nil {
		return errors.Wrapf(err, "reading listing file %s", listingPath)
	}

	document := string(data)
	if loc := regionPattern.FindStringIndex(document); loc != nil {
		region := `<div id="blog-list">` + Render(records) + "\n          </div>"
		document = document[:loc[0]] + region + document[loc[1]:]
	}

	if err := os.WriteFile(listingPath, []byte(document), 0644); err != nil {
		return errors.Wrapf(err, "writing listing file %s", listingPath)
	}
	return nil
}
