// Package datasource manages the mock data source connectors.
//
// The Registry is the single source of truth for connector state. It is
// created once at startup and injected wherever connector state is read or
// changed. All updates replace a whole record under one lock, so readers
// never observe a half-applied connect or disconnect.
package datasource
