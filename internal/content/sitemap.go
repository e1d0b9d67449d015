package content

import (
	"encoding/xml"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap lists the home page and both legal pages under baseURL
func (d *Document) Sitemap(baseURL string, now time.Time) URLSet {
	if baseURL == "" {
		baseURL = d.Site.URL
	}
	lastMod := now.UTC().Format(time.RFC3339)

	set := URLSet{XMLNS: sitemapNS}
	set.URLs = append(set.URLs, SitemapURL{Loc: baseURL, LastMod: lastMod, ChangeFreq: "weekly", Priority: 1})
	for _, key := range []string{"terms", "privacy"} {
		page, ok := d.Legal[key]
		if !ok || page.Path == "" {
			continue
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        baseURL + page.Path,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   0.3,
		})
	}
	return set
}
