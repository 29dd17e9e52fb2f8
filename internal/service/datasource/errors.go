package datasource

import "errors"

// ErrNotFound is returned for an id outside the connector set.
var ErrNotFound = errors.New("data source not found")
