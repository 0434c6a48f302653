package catalog

import (
	_ "embed"
	"encoding/json"
	"math/rand"
	"sort"
	"strings"

	"github.com/kyavuz/uakit/errors"
)

//go:embed data/browsers.json
var embeddedData []byte

// CategoryRandom draws from every category in the dataset.
const CategoryRandom = "random"

// datasetFile is the on-disk/wire format of a dataset snapshot.
type datasetFile struct {
	Browsers map[string][]string `json:"browsers"`
}

// Dataset is an immutable collection of real-world user-agent strings
// keyed by category name. All lookups are read-only, so a Dataset is
// safe for concurrent use.
type Dataset struct {
	categories map[string][]string
	all        []string
	fallback   string
}

// Option configures a Dataset during construction.
type Option func(*Dataset)

// WithFallback sets the string returned when a category has no entries.
func WithFallback(ua string) Option {
	return func(d *Dataset) { d.fallback = ua }
}

// New builds a Dataset from the embedded snapshot.
func New(opts ...Option) (*Dataset, error) {
	return Parse(embeddedData, opts...)
}

// Parse builds a Dataset from raw snapshot JSON.
func Parse(data []byte, opts ...Option) (*Dataset, error) {
	var file datasetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.InvalidInput("", "malformed dataset JSON").WithCause(err)
	}
	if len(file.Browsers) == 0 {
		return nil, errors.InvalidInput("browsers", "dataset has no categories")
	}

	d := &Dataset{categories: make(map[string][]string, len(file.Browsers))}
	for name, uas := range file.Browsers {
		name = strings.ToLower(name)
		d.categories[name] = uas
		d.all = append(d.all, uas...)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Categories returns the sorted category names, including the virtual
// "random" category.
func (d *Dataset) Categories() []string {
	names := make([]string, 0, len(d.categories)+1)
	for name := range d.categories {
		names = append(names, name)
	}
	names = append(names, CategoryRandom)
	sort.Strings(names)
	return names
}

// Has reports whether the named category exists.
func (d *Dataset) Has(name string) bool {
	name = strings.ToLower(name)
	if name == CategoryRandom {
		return true
	}
	_, ok := d.categories[name]
	return ok
}

// Category returns the entries of the named category.
func (d *Dataset) Category(name string) ([]string, bool) {
	name = strings.ToLower(name)
	if name == CategoryRandom {
		return d.all, true
	}
	uas, ok := d.categories[name]
	return uas, ok
}

// Pick returns one random entry from the named category. An unknown
// category is an error; an empty category returns the configured
// fallback when one is set.
func (d *Dataset) Pick(name string) (string, error) {
	uas, ok := d.Category(name)
	if !ok {
		return "", errors.UnknownCategory(name)
	}
	if len(uas) == 0 {
		if d.fallback != "" {
			return d.fallback, nil
		}
		return "", errors.EmptyPool().WithDetail("category", name)
	}
	return uas[rand.Intn(len(uas))], nil
}

// Random returns one random entry from the whole dataset.
func (d *Dataset) Random() string {
	ua, _ := d.Pick(CategoryRandom)
	return ua
}

// Size returns the total number of entries across all categories.
func (d *Dataset) Size() int {
	return len(d.all)
}
