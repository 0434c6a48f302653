package filter

import (
	"strings"

	"github.com/kyavuz/uakit/errors"
)

// Category names a filter dimension. The set of categories is closed.
type Category string

const (
	CategoryHardwareTypes    Category = "hardware_types"
	CategorySoftwareTypes    Category = "software_types"
	CategorySoftwareNames    Category = "software_names"
	CategorySoftwareEngines  Category = "software_engines"
	CategoryOperatingSystems Category = "operating_systems"
	CategoryPopularity       Category = "popularity"
)

// Categories returns every legal filter category.
func Categories() []Category {
	return []Category{
		CategoryHardwareTypes,
		CategorySoftwareTypes,
		CategorySoftwareNames,
		CategorySoftwareEngines,
		CategoryOperatingSystems,
		CategoryPopularity,
	}
}

// HardwareType classifies the device hardware behind a user agent.
type HardwareType string

const (
	HardwareComputer HardwareType = "computer"
	HardwareMobile   HardwareType = "mobile"
	HardwareServer   HardwareType = "server"
)

// SoftwareType classifies the kind of software behind a user agent.
type SoftwareType string

const (
	SoftwareWebBrowser  SoftwareType = "web_browser"
	SoftwareApplication SoftwareType = "application"
	SoftwareBot         SoftwareType = "bot"
)

// SoftwareName identifies a specific browser.
type SoftwareName string

const (
	NameChrome  SoftwareName = "chrome"
	NameFirefox SoftwareName = "firefox"
	NameSafari  SoftwareName = "safari"
	NameEdge    SoftwareName = "edge"
	NameOpera   SoftwareName = "opera"
)

// SoftwareEngine identifies a rendering engine.
type SoftwareEngine string

const (
	EngineBlink  SoftwareEngine = "blink"
	EngineGecko  SoftwareEngine = "gecko"
	EngineWebkit SoftwareEngine = "webkit"
)

// OperatingSystem identifies the OS named in a user agent.
type OperatingSystem string

const (
	OSWindows OperatingSystem = "windows"
	OSLinux   OperatingSystem = "linux"
	OSMac     OperatingSystem = "mac"
	OSAndroid OperatingSystem = "android"
	OSIOS     OperatingSystem = "ios"
)

// Popularity buckets how frequently a user agent is seen in the wild.
type Popularity string

const (
	PopularityVeryCommon Popularity = "very_common"
	PopularityCommon     Popularity = "common"
	PopularityAverage    Popularity = "average"
	PopularityRare       Popularity = "rare"
)

var hardwareTypes = map[string]HardwareType{
	"COMPUTER": HardwareComputer,
	"MOBILE":   HardwareMobile,
	"SERVER":   HardwareServer,
}

var softwareTypes = map[string]SoftwareType{
	"WEB_BROWSER": SoftwareWebBrowser,
	"APPLICATION": SoftwareApplication,
	"BOT":         SoftwareBot,
}

var softwareNames = map[string]SoftwareName{
	"CHROME":  NameChrome,
	"FIREFOX": NameFirefox,
	"SAFARI":  NameSafari,
	"EDGE":    NameEdge,
	"OPERA":   NameOpera,
}

var softwareEngines = map[string]SoftwareEngine{
	"BLINK":  EngineBlink,
	"GECKO":  EngineGecko,
	"WEBKIT": EngineWebkit,
}

var operatingSystems = map[string]OperatingSystem{
	"WINDOWS": OSWindows,
	"LINUX":   OSLinux,
	"MAC":     OSMac,
	"ANDROID": OSAndroid,
	"IOS":     OSIOS,
}

var popularities = map[string]Popularity{
	"VERY_COMMON": PopularityVeryCommon,
	"COMMON":      PopularityCommon,
	"AVERAGE":     PopularityAverage,
	"RARE":        PopularityRare,
}

// ParseHardwareType resolves a human-readable value against the
// HardwareType constants. Matching is case-insensitive.
func ParseHardwareType(s string) (HardwareType, error) {
	if v, ok := hardwareTypes[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategoryHardwareTypes), s)
}

// ParseSoftwareType resolves a human-readable value against the
// SoftwareType constants.
func ParseSoftwareType(s string) (SoftwareType, error) {
	if v, ok := softwareTypes[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategorySoftwareTypes), s)
}

// ParseSoftwareName resolves a human-readable value against the
// SoftwareName constants.
func ParseSoftwareName(s string) (SoftwareName, error) {
	if v, ok := softwareNames[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategorySoftwareNames), s)
}

// ParseSoftwareEngine resolves a human-readable value against the
// SoftwareEngine constants.
func ParseSoftwareEngine(s string) (SoftwareEngine, error) {
	if v, ok := softwareEngines[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategorySoftwareEngines), s)
}

// ParseOperatingSystem resolves a human-readable value against the
// OperatingSystem constants.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	if v, ok := operatingSystems[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategoryOperatingSystems), s)
}

// ParsePopularity resolves a human-readable value against the
// Popularity constants.
func ParsePopularity(s string) (Popularity, error) {
	if v, ok := popularities[strings.ToUpper(s)]; ok {
		return v, nil
	}
	return "", errors.InvalidFilter(string(CategoryPopularity), s)
}
