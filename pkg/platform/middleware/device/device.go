// Package device turns a User-Agent header into a short label for audit
// records, such as "Chrome on Linux".
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

const unknown = "unknown device"

// Label describes the client behind a User-Agent string.
func Label(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return unknown
	}
	ua := useragent.New(userAgent)
	if ua.Bot() {
		name, _ := ua.Browser()
		if name == "" {
			return "bot"
		}
		return "bot: " + name
	}

	browser, _ := ua.Browser()
	os := ua.OSInfo().Name
	switch {
	case browser != "" && os != "":
		return browser + " on " + os
	case browser != "":
		return browser
	case os != "":
		return os
	default:
		return unknown
	}
}
