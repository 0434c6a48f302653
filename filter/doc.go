// Package filter provides a filterable catalog of user-agent strings
// annotated with hardware and software attributes.
//
// Filter values form closed enumerated sets (HardwareType, SoftwareType,
// SoftwareName, SoftwareEngine, OperatingSystem, Popularity) with
// explicit string-to-constant resolution: parsing an unknown value
// returns an error instead of silently matching nothing.
//
//	params, err := filter.ParseParams(map[string]string{
//	    "operating_systems": "WINDOWS",
//	})
//	pool, err := filter.NewPool(params, 100)
//	ua, err := pool.Pick()
package filter
