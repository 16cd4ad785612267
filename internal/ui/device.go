package ui

import "strings"

// Device is the coarse device class used for responsive sizing.
type Device int

const (
	Desktop Device = iota
	Mobile
)

func (d Device) String() string {
	if d == Mobile {
		return "mobile"
	}
	return "desktop"
}

// FontSize picks the preset for d.
func (d Device) FontSize(mobile, desktop string) string {
	if d == Mobile {
		return mobile
	}
	return desktop
}

// mobileTokens are user-agent fragments that mark a phone-class browser.
var mobileTokens = []string{
	"mobi",
	"android",
	"iphone",
	"ipod",
	"blackberry",
	"windows phone",
	"opera mini",
}

// ClassifyRequest classifies a browser from its Sec-CH-UA-Mobile client hint
// and User-Agent header. The hint wins when present.
func ClassifyRequest(userAgent, mobileHint string) Device {
	switch strings.TrimSpace(mobileHint) {
	case "?1":
		return Mobile
	case "?0":
		return Desktop
	}
	ua := strings.ToLower(userAgent)
	for _, tok := range mobileTokens {
		if strings.Contains(ua, tok) {
			return Mobile
		}
	}
	return Desktop
}

// MobileColumns is the terminal width below which a preview counts as mobile.
const MobileColumns = 60

// ClassifyWidth classifies a terminal by its column count.
func ClassifyWidth(cols int) Device {
	if cols > 0 && cols < MobileColumns {
		return Mobile
	}
	return Desktop
}
