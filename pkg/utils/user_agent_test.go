package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent_Desktop(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	info := ParseUserAgent(ua, "en-US,en;q=0.9")

	assert.Equal(t, "computer", info.Device)
	assert.Contains(t, info.Browser, "Chrome")
	assert.Contains(t, info.OS, "Windows")
	assert.Equal(t, "en-US", info.Locale)
}

func TestParseUserAgent_Empty(t *testing.T) {
	info := ParseUserAgent("", "")

	assert.Equal(t, ClientInfo{Device: "unknown", OS: "unknown", Browser: "unknown"}, info)
}

func TestPrimaryLocale(t *testing.T) {
	assert.Equal(t, "fr", primaryLocale("fr;q=0.8, en"))
	assert.Equal(t, "es-ES", primaryLocale(" es-ES "))
	assert.Equal(t, "", primaryLocale(""))
}
