package synthetic

import (
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/kyavuz/uakit/errors"
)

// DefaultMethod is the generation method used when none is configured.
// It is always present in the method set.
const DefaultMethod = "user_agent"

// methods maps generation method names to gofakeit generators.
var methods = map[string]func() string{
	"user_agent": gofakeit.UserAgent,
	"chrome":     gofakeit.ChromeUserAgent,
	"firefox":    gofakeit.FirefoxUserAgent,
	"safari":     gofakeit.SafariUserAgent,
	"opera":      gofakeit.OperaUserAgent,
}

// Methods returns the sorted names of all generation methods.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether the named generation method exists.
func Supports(name string) bool {
	_, ok := methods[strings.ToLower(name)]
	return ok
}

// Generate invokes the named generation method. Unknown names return an
// error; they are never silently remapped here.
func Generate(name string) (string, error) {
	gen, ok := methods[strings.ToLower(name)]
	if !ok {
		return "", errors.UnknownMethod(name)
	}
	return gen(), nil
}

// Default invokes the default generation method.
func Default() string {
	return methods[DefaultMethod]()
}
