package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntry is one <url> of sitemap.xml.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapEntries lists the site root followed by every language page.
func SitemapEntries(meta Meta, slugs []string, now time.Time) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(slugs)+1)
	entries = append(entries, SitemapEntry{
		URL:             meta.BaseURL,
		LastModified:    now,
		ChangeFrequency: "daily",
		Priority:        1,
	})

	return append(entries, slice.Map(slugs, func(slug string) SitemapEntry {
		return SitemapEntry{
			URL:             meta.LanguageURL(slug),
			LastModified:    now,
			ChangeFrequency: "weekly",
			Priority:        0.8,
		}
	})...)
}

// RenderSitemap encodes entries as a sitemaps.org document.
func RenderSitemap(entries []SitemapEntry) ([]byte, error) {
	set := urlSet{
		Xmlns: sitemapNamespace,
		URLs: slice.Map(entries, func(entry SitemapEntry) sitemapURL {
			return sitemapURL{
				Loc:        entry.URL,
				LastMod:    entry.LastModified.UTC().Format(isoMillis),
				ChangeFreq: entry.ChangeFrequency,
				Priority:   strconv.FormatFloat(entry.Priority, 'f', -1, 64),
			}
		}),
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		return nil, fmt.Errorf("site: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// RenderRobots allows every crawler and points it at the sitemap.
func RenderRobots(meta Meta) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + meta.URL("/sitemap.xml") + "\n")
}
