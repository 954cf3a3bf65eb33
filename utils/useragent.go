package utils

import (
	"fmt"
	"strings"

	ua "github.com/mileusna/useragent"
)

// DescribeDevice turns a User-Agent header into the short device string
// recorded on a user's last login.
func DescribeDevice(userAgent string) string {
	browser, os, device := parseUserAgent(userAgent)
	return fmt.Sprintf("%s on %s (%s)", browser, os, device)
}

func parseUserAgent(userAgent string) (browser, os, device string) {
	if userAgent == "" {
		return "Unknown Browser", "Unknown OS", "Desktop"
	}

	parsed := ua.Parse(userAgent)

	browser = parsed.Name
	if browser == "" {
		browser = "Unknown Browser"
	}

	os = parsed.OS
	if os == "" {
		os = "Unknown OS"
	}

	device = "Desktop"
	if parsed.Mobile {
		device = "Mobile"
	} else if parsed.Tablet {
		device = "Tablet"
	}

	return strings.TrimSpace(browser), strings.TrimSpace(os), device
}
