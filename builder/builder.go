package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/blogtools/blogbuild/config"
	"github.com/blogtools/blogbuild/listing"
	"github.com/blogtools/blogbuild/markdown"
	"github.com/blogtools/blogbuild/post"
	"github.com/blogtools/blogbuild/utils"
)

// Builder runs one full build pass: every Markdown source file is
// converted and written, then the listing page is regenerated from
// the accumulated records. Files are processed strictly in sequence
// and the first I/O error aborts the rest of the batch; pages written
// before the failure stay on disk.
type Builder struct {
	cfg  config.Config
	conv *markdown.Converter
	out  io.Writer
}

func New(cfg config.Config, conv *markdown.Converter, out io.Writer) *Builder {
	return &Builder{cfg: cfg, conv: conv, out: out}
}

// Run returns the number of posts generated. Zero source files is a
// deliberate no-op that leaves the listing document untouched.
func (b *Builder) Run() (int, error) {
	if err := os.MkdirAll(b.cfg.SourceDir, os.ModePerm); err != nil {
		return 0, errors.Wrapf(err, "creating source directory %s", b.cfg.SourceDir)
	}
	if err := os.MkdirAll(b.cfg.OutputDir, os.ModePerm); err != nil {
		return 0, errors.Wrapf(err, "creating output directory %s", b.cfg.OutputDir)
	}

	files, err := filepath.Glob(filepath.Join(b.cfg.SourceDir, "*.md"))
	if err != nil {
		return 0, errors.Wrapf(err, "listing markdown files in %s", b.cfg.SourceDir)
	}

	if len(files) == 0 {
		fmt.Fprintf(b.out, "No markdown files found in %s/\n", b.cfg.SourceDir)
		fmt.Fprintf(b.out, "Create markdown files in %s/ to generate blog posts.\n", b.cfg.SourceDir)
		return 0, nil
	}

	now := time.Now()
	records := make([]post.Record, 0, len(files))

	for _, path := range files {
		fmt.Fprintf(b.out, "Processing %s...\n", filepath.Base(path))

		rec, err := b.buildPost(path, now)
		if err != nil {
			return len(records), err
		}
		records = append(records, rec)
	}

	fmt.Fprintf(b.out, "\nUpdating blog listing page...\n")
	if err := listing.Update(b.cfg.ListingFile, records); err != nil {
		return len(records), err
	}
	fmt.Fprintf(b.out, "  Updated: %s\n", b.cfg.ListingFile)

	if b.cfg.BaseURL != "" {
		sitemapPath := filepath.Join(b.cfg.OutputDir, "sitemap.xml")
		if err := utils.WriteSitemap(b.cfg.BaseURL, records, sitemapPath); err != nil {
			fmt.Fprintf(b.out, "Error generating sitemap: %s\n", err.Error())
		} else {
			fmt.Fprintf(b.out, "  Wrote: %s\n", sitemapPath)
		}
	}

	fmt.Fprintf(b.out, "\nBuild complete! Generated %d blog post(s).\n", len(records))
	return len(records), nil
}

func (b *Builder) buildPost(path string, now time.Time) (post.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return post.Record{}, errors.Wrapf(err, "reading %s", path)
	}

	metadata, body := post.ParseFrontmatter(string(content))

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec := post.Resolve(metadata, slug, now)

	htmlContent, err := b.conv.Convert(body)
	if err != nil {
		return post.Record{}, errors.Wrapf(err, "converting %s", path)
	}

	// The template is re-read for every post rather than cached; a
	// missing template therefore aborts the batch on the first post.
	tmpl, err := os.ReadFile(b.cfg.TemplateFile)
	if err != nil {
		return post.Record{}, errors.Wrapf(err, "reading template %s", b.cfg.TemplateFile)
	}

	page := post.Render(string(tmpl), rec, htmlContent)

	postDir := filepath.Join(b.cfg.OutputDir, slug)
	if err := os.MkdirAll(postDir, os.ModePerm); err != nil {
		return post.Record{}, errors.Wrapf(err, "creating %s", postDir)
	}

	outputFile := filepath.Join(postDir, config.PageFilename)
	if err := os.WriteFile(outputFile, []byte(page), 0644); err != nil {
		return post.Record{}, errors.Wrapf(err, "writing %s", outputFile)
	}

	fmt.Fprintf(b.out, "  Generated: %s\n", outputFile)
	return rec, nil
}
