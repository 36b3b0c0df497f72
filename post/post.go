package post

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is the per-post summary kept in memory for one build run and
// used to regenerate the listing page.
type Record struct {
	Slug        string
	Title       string
	Date        string
	Description string
}

const longDateFormat = "January 02, 2006"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

var titleCaser = cases.Title(language.English)

// TitleFromSlug derives a human-readable title from a filename stem,
// e.g. "my-first-post" -> "My First Post".
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// FormatDate reformats an ISO YYYY-MM-DD date into the long form used
// on rendered pages ("March 05, 2024"). Any value that does not parse
// as an ISO date passes through unchanged.
func FormatDate(date string) string {
	if !isoDatePattern.MatchString(date) {
		return date
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(longDateFormat)
}

// Resolve applies the metadata defaults to produce a Record for slug:
// the title falls back to a title-cased form of the slug, the date
// falls back to now and is reformatted when given in ISO form, and
// the description defaults to empty.
func Resolve(metadata map[string]string, slug string, now time.Time) Record {
	title := metadata["title"]
	if title == "" {
		title = TitleFromSlug(slug)
	}

	date, ok := metadata["date"]
	if !ok || date == "" {
		date = now.Format(longDateFormat)
	} else {
		date = FormatDate(date)
	}

	return Record{
		Slug:        slug,
		Title:       title,
		Date:        date,
		Description: metadata["description"],
	}
}

// Render fills the page template by literal, sequential substitution
// of the placeholder tokens. Values are inserted verbatim with no
// escaping; the template text is not re-interpreted.
func Render(template string, rec Record, contentHTML string) string {
	page := strings.ReplaceAll(template, "{{TITLE}}", rec.Title)
	page = strings.ReplaceAll(page, "{{DESCRIPTION}}", rec.Description)
	page = strings.ReplaceAll(page, "{{DATE}}", rec.Date)
	page = strings.ReplaceAll(page, "{{SLUG}}", rec.Slug)
	page = strings.ReplaceAll(page, "{{CONTENT}}", contentHTML)
	return page
}
