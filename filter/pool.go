package filter

import (
	_ "embed"
	"encoding/json"
	"math/rand"

	"github.com/kyavuz/uakit/errors"
)

//go:embed data/useragents.json
var embeddedInventory []byte

// DefaultLimit caps a candidate pool when the caller passes no limit.
const DefaultLimit = 100

// entry is one annotated user agent in the inventory.
type entry struct {
	UA              string `json:"ua"`
	HardwareType    string `json:"hardware_type"`
	SoftwareType    string `json:"software_type"`
	SoftwareName    string `json:"software_name"`
	SoftwareEngine  string `json:"software_engine"`
	OperatingSystem string `json:"operating_system"`
	Popularity      string `json:"popularity"`
}

func (e *entry) attribute(cat Category) string {
	switch cat {
	case CategoryHardwareTypes:
		return e.HardwareType
	case CategorySoftwareTypes:
		return e.SoftwareType
	case CategorySoftwareNames:
		return e.SoftwareName
	case CategorySoftwareEngines:
		return e.SoftwareEngine
	case CategoryOperatingSystems:
		return e.OperatingSystem
	case CategoryPopularity:
		return e.Popularity
	default:
		return ""
	}
}

type inventoryFile struct {
	UserAgents []entry `json:"user_agents"`
}

// Pool is a bounded list of user-agent strings matching a filter
// parameter set. The candidate list is computed once at construction
// and never mutated, so a Pool is safe for concurrent use.
type Pool struct {
	candidates []string
	limit      int
}

// NewPool builds a candidate pool from the embedded inventory using the
// resolved filter params, capped at limit entries (DefaultLimit when
// limit is not positive). An empty result is not a construction error;
// Pick reports it per call.
func NewPool(params Params, limit int) (*Pool, error) {
	return newPoolFrom(embeddedInventory, params, limit)
}

func newPoolFrom(data []byte, params Params, limit int) (*Pool, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var file inventoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.InvalidInput("", "malformed inventory JSON").WithCause(err)
	}

	p := &Pool{limit: limit}
	for i := range file.UserAgents {
		if matches(&file.UserAgents[i], params) {
			p.candidates = append(p.candidates, file.UserAgents[i].UA)
			if len(p.candidates) == limit {
				break
			}
		}
	}
	return p, nil
}

func matches(e *entry, params Params) bool {
	for cat, code := range params {
		if e.attribute(cat) != code {
			return false
		}
	}
	return true
}

// Pick returns one random candidate. An empty pool is an error the
// caller decides how to resolve.
func (p *Pool) Pick() (string, error) {
	if len(p.candidates) == 0 {
		return "", errors.EmptyPool()
	}
	return p.candidates[rand.Intn(len(p.candidates))], nil
}

// Size returns the realized candidate count.
func (p *Pool) Size() int {
	return len(p.candidates)
}

// Limit returns the configured cap.
func (p *Pool) Limit() int {
	return p.limit
}
