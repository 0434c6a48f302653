package config

import (
	"strings"

	"github.com/spf13/cast"
)

// Settings is an immutable mapping from option name to value, supplied
// once at provider-construction time. Key lookups are case-insensitive:
// option names follow the upper-case scraping-settings convention
// (USER_AGENT), while Viper normalizes file keys to lower case.
// Lookups never mutate the map, so a Settings value is safe for
// concurrent use.
type Settings struct {
	values map[string]any
}

// NewSettings builds a Settings from a plain map. The map is copied so
// later mutations of the argument do not leak into the Settings.
func NewSettings(values map[string]any) *Settings {
	cp := make(map[string]any, len(values))
	for k, v := range values {
		cp[strings.ToLower(k)] = v
	}
	return &Settings{values: cp}
}

// Has reports whether the key is present.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[strings.ToLower(key)]
	return ok
}

// Get returns the raw value for key, or def when absent.
func (s *Settings) Get(key string, def any) any {
	if v, ok := s.values[strings.ToLower(key)]; ok {
		return v
	}
	return def
}

// GetString returns the value for key coerced to string, or def when
// absent or not coercible.
func (s *Settings) GetString(key, def string) string {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return def
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return def
	}
	return str
}

// GetStringMap returns the value for key coerced to map[string]string,
// or an empty map when absent or not coercible. Used for the
// filter-category-to-value mapping.
func (s *Settings) GetStringMap(key string) map[string]string {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return map[string]string{}
	}
	m, err := cast.ToStringMapStringE(v)
	if err != nil {
		return map[string]string{}
	}
	return m
}

// GetStringSlice returns the value for key coerced to []string, or def
// when absent or not coercible. A plain string value is split on commas
// so list-valued options can come from environment variables.
func (s *Settings) GetStringSlice(key string, def []string) []string {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return def
	}
	if str, isStr := v.(string); isStr {
		parts := strings.Split(str, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return def
		}
		return out
	}
	sl, err := cast.ToStringSliceE(v)
	if err != nil {
		return def
	}
	return sl
}

// GetBool returns the value for key coerced to bool, or def when absent
// or not coercible.
func (s *Settings) GetBool(key string, def bool) bool {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// Keys returns the option names present in the settings.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
