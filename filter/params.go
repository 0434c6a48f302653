package filter

import (
	"sort"
	"strings"

	"github.com/kyavuz/uakit/errors"
)

// Params maps each configured filter category to its resolved backend
// code. Built once and treated as immutable afterwards.
type Params map[Category]string

// ParseParams resolves a mapping of human-readable category/value pairs
// into backend filter codes. Values are case-normalized before
// resolution. The first unresolvable pair aborts with an error; a
// category outside the closed set is equally fatal.
func ParseParams(raw map[string]string) (Params, error) {
	params := make(Params, len(raw))
	for cat, value := range raw {
		category := Category(strings.ToLower(cat))
		code, err := resolve(category, value)
		if err != nil {
			return nil, err
		}
		params[category] = code
	}
	return params, nil
}

func resolve(category Category, value string) (string, error) {
	switch category {
	case CategoryHardwareTypes:
		v, err := ParseHardwareType(value)
		return string(v), err
	case CategorySoftwareTypes:
		v, err := ParseSoftwareType(value)
		return string(v), err
	case CategorySoftwareNames:
		v, err := ParseSoftwareName(value)
		return string(v), err
	case CategorySoftwareEngines:
		v, err := ParseSoftwareEngine(value)
		return string(v), err
	case CategoryOperatingSystems:
		v, err := ParseOperatingSystem(value)
		return string(v), err
	case CategoryPopularity:
		v, err := ParsePopularity(value)
		return string(v), err
	default:
		return "", errors.InvalidInput(string(category), "unknown filter category")
	}
}

// String renders the params as "category=code | category=code" for logs.
func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for cat, code := range p {
		parts = append(parts, string(cat)+"="+code)
	}
	sort.Strings(parts)
	return strings.Join(parts, " | ")
}
