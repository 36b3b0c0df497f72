package utils

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blogtools/blogbuild/post"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteSitemap writes a sitemap covering the blog listing and every
// post to outputPath.
func WriteSitemap(baseURL string, records []post.Record, outputPath string) error {
	xmlOutput, err := GenerateSitemapContent(baseURL, records)
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer xmlFile.Close()

	xmlFile.Write([]byte(xml.Header))
	xmlFile.Write([]byte(xmlOutput))

	return nil
}

func GenerateSitemapContent(baseURL string, records []post.Record) (string, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	lastMod := time.Now().Format("2006-01-02")

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	// The listing page itself, then every post
	sitemap.Urls = append(sitemap.Urls, Url{
		Loc:     fmt.Sprintf("%s/blog/", baseURL),
		LastMod: lastMod,
	})

	for _, rec := range records {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     fmt.Sprintf("%s/blog/%s/", baseURL, rec.Slug),
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", err
	}

	return string(xmlOutput), nil
}
