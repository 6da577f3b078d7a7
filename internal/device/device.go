// Package device classifies a raw User-Agent header into the coarse
// browser/OS/device-type triple used for trusted-device matching.
package device

import (
	"strings"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

func Parse(userAgent string) domain.DeviceInfo {
	if userAgent == "" {
		return domain.DeviceInfo{
			UserAgent:  "Unknown",
			Browser:    "Unknown",
			OS:         "Unknown",
			DeviceType: "desktop",
		}
	}

	return domain.DeviceInfo{
		UserAgent:  userAgent,
		Browser:    browser(userAgent),
		OS:         operatingSystem(userAgent),
		DeviceType: deviceType(userAgent),
	}
}

func browser(ua string) string {
	switch {
	// Order matters: Edge and Opera embed "Chrome", Chrome embeds "Safari".
	case strings.Contains(ua, "Edg/"), strings.Contains(ua, "Edge/"):
		return "Edge"
	case strings.Contains(ua, "OPR/"), strings.Contains(ua, "Opera"):
		return "Opera"
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	case strings.Contains(ua, "curl/"):
		return "curl"
	default:
		return "Unknown"
	}
}

func operatingSystem(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Mac OS X"), strings.Contains(ua, "Macintosh"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Unknown"
	}
}

func deviceType(ua string) string {
	switch {
	case strings.Contains(ua, "iPad"), strings.Contains(ua, "Tablet"):
		return "tablet"
	case strings.Contains(ua, "Mobile"), strings.Contains(ua, "iPhone"), strings.Contains(ua, "Android"):
		return "mobile"
	default:
		return "desktop"
	}
}
