// Package sitemap renders the sitemap.xml. The static marketing pages are
// always present; dynamic entries come from the database and the route
// catalog, and when a lookup fails the output degrades to the static set.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"net/url"

	contentRepo "hantrip/database/repository/content"
	poiRepo "hantrip/database/repository/poi"
	packageRepo "hantrip/database/repository/travelpackage"
	"hantrip/services/route"

	"go.uber.org/zap"
)

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Service builds the sitemap document.
type Service struct {
	baseURL  string
	pois     poiRepo.POIRepository
	contents contentRepo.KContentRepository
	packages packageRepo.PackageRepository
	logger   *zap.Logger
}

// NewService creates the sitemap service.
func NewService(baseURL string, pois poiRepo.POIRepository, contents contentRepo.KContentRepository, packages packageRepo.PackageRepository, logger *zap.Logger) *Service {
	return &Service{baseURL: baseURL, pois: pois, contents: contents, packages: packages, logger: logger}
}

var staticPages = []URL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/maps", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/contents", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/packages", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/info", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/info/transport", ChangeFreq: "monthly", Priority: "0.4"},
	{Loc: "/info/payments", ChangeFreq: "monthly", Priority: "0.4"},
	{Loc: "/info/emergency", ChangeFreq: "monthly", Priority: "0.4"},
}

// Build renders the full sitemap XML. Dynamic sections that fail to load are
// logged and skipped; the static pages always make it out.
func (s *Service) Build() ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, p := range staticPages {
		set.URLs = append(set.URLs, URL{
			Loc:        s.baseURL + p.Loc,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	set.URLs = append(set.URLs, s.poiURLs()...)
	set.URLs = append(set.URLs, s.contentURLs()...)
	set.URLs = append(set.URLs, s.packageURLs()...)
	set.URLs = append(set.URLs, s.routeURLs()...)

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func (s *Service) poiURLs() []URL {
	pois, err := s.pois.GetAll()
	if err != nil {
		s.logger.Error("sitemap: failed to load POIs, emitting static pages only for this section", zap.Error(err))
		return nil
	}
	urls := make([]URL, 0, len(pois))
	for _, p := range pois {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/pois/%s", s.baseURL, url.PathEscape(p.ID)),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}
	return urls
}

func (s *Service) contentURLs() []URL {
	subNames, err := s.contents.SubNames()
	if err != nil {
		s.logger.Error("sitemap: failed to load content sub-names", zap.Error(err))
		return nil
	}
	urls := make([]URL, 0, len(subNames))
	for _, sub := range subNames {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/contents/spot/%s", s.baseURL, url.PathEscape(sub)),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}
	return urls
}

func (s *Service) packageURLs() []URL {
	pkgs, err := s.packages.GetAll()
	if err != nil {
		s.logger.Error("sitemap: failed to load packages", zap.Error(err))
		return nil
	}
	urls := make([]URL, 0, len(pkgs))
	for _, p := range pkgs {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/packages/%s", s.baseURL, url.PathEscape(p.ID)),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}
	return urls
}

func (s *Service) routeURLs() []URL {
	routes := route.All()
	urls := make([]URL, 0, len(routes))
	for _, r := range routes {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/maps/route/%s", s.baseURL, url.PathEscape(r.ID)),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}
	return urls
}
