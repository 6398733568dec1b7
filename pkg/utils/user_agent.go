package utils

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

const unknown = "unknown"

// ClientInfo is the coarse client description attached to access logs.
type ClientInfo struct {
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Locale  string `json:"locale,omitempty"`
}

func ParseUserAgent(uaString, acceptLanguage string) ClientInfo {
	info := ClientInfo{
		Device:  unknown,
		OS:      unknown,
		Browser: unknown,
		Locale:  primaryLocale(acceptLanguage),
	}
	if strings.TrimSpace(uaString) == "" {
		return info
	}

	ua := uasurfer.Parse(uaString)
	switch ua.DeviceType {
	case uasurfer.DeviceComputer:
		info.Device = "computer"
	case uasurfer.DeviceTablet:
		info.Device = "tablet"
	case uasurfer.DevicePhone:
		info.Device = "phone"
	case uasurfer.DeviceConsole:
		info.Device = "console"
	case uasurfer.DeviceWearable:
		info.Device = "wearable"
	case uasurfer.DeviceTV:
		info.Device = "tv"
	}

	if ua.OS.Name != uasurfer.OSUnknown {
		info.OS = fmt.Sprintf("%s %d.%d", ua.OS.Name.StringTrimPrefix(), ua.OS.Version.Major, ua.OS.Version.Minor)
	}
	if ua.Browser.Name != uasurfer.BrowserUnknown {
		info.Browser = fmt.Sprintf("%s %d.%d", ua.Browser.Name.StringTrimPrefix(), ua.Browser.Version.Major, ua.Browser.Version.Minor)
	}
	return info
}

// primaryLocale returns the first tag of an Accept-Language header without its weight.
func primaryLocale(acceptLanguage string) string {
	tag, _, _ := strings.Cut(acceptLanguage, ",")
	tag, _, _ = strings.Cut(tag, ";")
	return strings.TrimSpace(tag)
}
