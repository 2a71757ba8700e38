package lookup

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

const (
	maxPageBytes   = 2 << 20
	maxRobotsBytes = 256 << 10
)

// SEOResult is the parsed landing page plus the origin URL of its preview
// image. The image is fetched and re-hosted by the caller; the origin URL is
// never exposed downstream.
type SEOResult struct {
	SEO          domain.SEO
	PreviewImage string
}

// SEOClient fetches a domain's landing page and robots.txt and extracts
// title, meta, Open Graph and Twitter card data.
type SEOClient struct {
	fetch   Fetcher
	timeout time.Duration
	logger  *slog.Logger
}

func NewSEOClient(fetch Fetcher, timeout time.Duration, logger *slog.Logger) *SEOClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &SEOClient{fetch: fetch, timeout: timeout, logger: logger.With("step", "seo")}
}

func (c *SEOClient) Lookup(ctx context.Context, name string) (*SEOResult, error) {
	res, err := c.fetch.Fetch(ctx, "https://"+name+"/", netguard.Options{
		Method:          http.MethodGet,
		Timeout:         c.timeout,
		MaxBytes:        maxPageBytes,
		TruncateOnLimit: true,
	})
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, temporary("seo", "timeout", err)
		}
		switch netguard.KindOf(err) {
		case netguard.ErrDNS, netguard.ErrInvalidResponse:
			return nil, temporary("seo", "retry", err)
		default:
			return nil, permanent("seo", "unreachable", err)
		}
	}

	result := &SEOResult{}
	if res.OK && strings.Contains(res.ContentType, "html") {
		base, _ := url.Parse(res.FinalURL)
		parsePage(res.Body, base, result)
	}

	// robots.txt is best effort. A missing or broken file degrades to
	// Fetched=false, never fails the step.
	result.SEO.Robots = c.fetchRobots(ctx, name)

	return result, nil
}

func (c *SEOClient) fetchRobots(ctx context.Context, name string) *domain.Robots {
	res, err := c.fetch.Fetch(ctx, "https://"+name+"/robots.txt", netguard.Options{
		Method:          http.MethodGet,
		Timeout:         c.timeout,
		MaxBytes:        maxRobotsBytes,
		TruncateOnLimit: true,
	})
	if err != nil {
		c.logger.Debug("robots fetch failed", "domain", name, "error", err)
		return &domain.Robots{Fetched: false}
	}
	if !res.OK || !isTextual(res.ContentType) {
		return &domain.Robots{Fetched: false}
	}
	return ParseRobots(res.Body)
}

func isTextual(contentType string) bool {
	if contentType == "" {
		return true
	}
	return strings.HasPrefix(contentType, "text/")
}

func parsePage(body []byte, base *url.URL, result *SEOResult) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return
	}

	seo := &result.SEO
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if seo.Title == "" {
					seo.Title = strings.TrimSpace(textContent(n))
				}
			case "meta":
				handleMeta(attrMap(n), seo)
			case "link":
				attrs := attrMap(n)
				if strings.EqualFold(attrs["rel"], "canonical") && seo.CanonicalURL == "" {
					seo.CanonicalURL = resolveURL(base, attrs["href"])
				}
			case "body":
				// Metadata lives in <head>; no need to walk the document body.
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if img := seo.OpenGraph["og:image"]; img != "" {
		result.PreviewImage = resolveURL(base, img)
	} else if img := seo.Twitter["twitter:image"]; img != "" {
		result.PreviewImage = resolveURL(base, img)
	}
}

func handleMeta(attrs map[string]string, seo *domain.SEO) {
	content := strings.TrimSpace(attrs["content"])
	if content == "" {
		return
	}

	name := strings.ToLower(attrs["name"])
	property := strings.ToLower(attrs["property"])

	switch {
	case name == "description":
		if seo.Description == "" {
			seo.Description = content
		}
	case strings.HasPrefix(property, "og:"):
		if seo.OpenGraph == nil {
			seo.OpenGraph = make(map[string]string)
		}
		if _, dup := seo.OpenGraph[property]; !dup {
			seo.OpenGraph[property] = content
		}
	case strings.HasPrefix(name, "twitter:"):
		if seo.Twitter == nil {
			seo.Twitter = make(map[string]string)
		}
		if _, dup := seo.Twitter[name]; !dup {
			seo.Twitter[name] = content
		}
	}
}

func attrMap(n *html.Node) map[string]string {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return attrs
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if base == nil {
		return ref
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
