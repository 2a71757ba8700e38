package lookup

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// ParseRobots parses a robots.txt body into its user-agent groups and
// sitemap directives. Consecutive User-agent lines share one group; the
// first rule line closes the agent list. Unknown directives are skipped.
func ParseRobots(body []byte) *domain.Robots {
	robots := &domain.Robots{Fetched: true}

	var group *domain.RobotsGroup
	collectingAgents := false

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "user-agent":
			if value == "" {
				continue
			}
			if !collectingAgents {
				if group != nil {
					robots.Groups = append(robots.Groups, *group)
				}
				group = &domain.RobotsGroup{}
				collectingAgents = true
			}
			group.UserAgents = append(group.UserAgents, value)
		case "allow":
			if group != nil {
				group.Allow = append(group.Allow, value)
				collectingAgents = false
			}
		case "disallow":
			if group != nil {
				group.Disallow = append(group.Disallow, value)
				collectingAgents = false
			}
		case "sitemap":
			if value != "" {
				robots.Sitemaps = append(robots.Sitemaps, value)
			}
		}
	}
	if group != nil {
		robots.Groups = append(robots.Groups, *group)
	}

	return robots
}
