package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

func TestParseRobots(t *testing.T) {
	body := []byte(`# site robots
User-agent: Googlebot
User-agent: Bingbot
Disallow: /admin
Allow: /admin/public

User-agent: *
Disallow: /private # keep out
Crawl-delay: 10

Sitemap: https://example.com/sitemap.xml
Sitemap: https://example.com/news-sitemap.xml
`)

	robots := ParseRobots(body)
	assert.True(t, robots.Fetched)
	assert.Equal(t, []string{
		"https://example.com/sitemap.xml",
		"https://example.com/news-sitemap.xml",
	}, robots.Sitemaps)

	require.Len(t, robots.Groups, 2)
	assert.Equal(t, domain.RobotsGroup{
		UserAgents: []string{"Googlebot", "Bingbot"},
		Allow:      []string{"/admin/public"},
		Disallow:   []string{"/admin"},
	}, robots.Groups[0])
	assert.Equal(t, domain.RobotsGroup{
		UserAgents: []string{"*"},
		Disallow:   []string{"/private"},
	}, robots.Groups[1])
}

func TestParseRobotsEmpty(t *testing.T) {
	robots := ParseRobots(nil)
	assert.True(t, robots.Fetched)
	assert.Empty(t, robots.Groups)
	assert.Empty(t, robots.Sitemaps)
}

func TestParseRobotsRuleBeforeAgent(t *testing.T) {
	// Rules outside any user-agent group are dropped, not attributed.
	robots := ParseRobots([]byte("Disallow: /\nUser-agent: *\nDisallow: /tmp\n"))
	require.Len(t, robots.Groups, 1)
	assert.Equal(t, []string{"/tmp"}, robots.Groups[0].Disallow)
}
