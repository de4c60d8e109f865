package useragent

import (
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
)

// 设备类型
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

var (
	botIndicators = []string{
		"bot", "crawler", "spider", "scraper", "slurp", "facebookexternalhit",
		"whatsapp", "telegram", "skypeuripreview",
	}
	tabletDevices = []string{"ipad", "tablet", "kindle", "surface"}
	mobileDevices = []string{"iphone", "android", "blackberry", "windows phone", "mobile", "phone"}
	mobileOS      = []string{"ios", "android", "windows phone", "blackberry os", "firefox os", "sailfish os"}
	desktopOS     = []string{"windows", "mac os x", "macos", "linux", "ubuntu", "chrome os", "freebsd", "openbsd", "netbsd"}
)

// Parser 基于 uap-go 内置规则识别访问设备
type Parser struct {
	parser *uaparser.Parser
}

// NewParser 使用 uap-go 内置的正则定义创建解析器
func NewParser() *Parser {
	return &Parser{parser: uaparser.NewFromSaved()}
}

// DeviceType 返回 desktop / mobile / tablet / bot / unknown
func (p *Parser) DeviceType(userAgent string) string {
	if userAgent == "" {
		return DeviceUnknown
	}
	client := p.parser.Parse(userAgent)
	ua := strings.ToLower(userAgent)

	if containsAny(strings.ToLower(client.UserAgent.Family), botIndicators) || containsAny(ua, botIndicators) ||
		strings.EqualFold(client.Device.Family, "Spider") {
		return DeviceBot
	}

	device := strings.ToLower(client.Device.Family)
	if device != "" && device != "other" {
		if containsAny(device, tabletDevices) {
			return DeviceTablet
		}
		if containsAny(device, mobileDevices) {
			return DeviceMobile
		}
	}

	osFamily := strings.ToLower(client.Os.Family)
	if containsAny(osFamily, mobileOS) {
		// iPad 与 Android 平板没有 Mobile 标记
		if strings.Contains(ua, "ipad") || (strings.Contains(osFamily, "android") && !strings.Contains(ua, "mobile")) {
			return DeviceTablet
		}
		return DeviceMobile
	}
	if containsAny(osFamily, desktopOS) {
		return DeviceDesktop
	}
	return DeviceUnknown
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
