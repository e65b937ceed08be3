package phy

import "errors"

var (
	// ErrLookup is returned when a mode name or bit rate is outside a
	// family's fixed catalog.
	ErrLookup = errors.New("lookup failed")

	// ErrConfiguration marks a request the family cannot express at all,
	// e.g. a bit rate that none of its modes produce.
	ErrConfiguration = errors.New("invalid configuration")
)
