// Package domain holds the value types shared by the API, the services and
// the CLI: intents, connectors and their state, and the campaign document
// returned to the chat front end.
//
// Nothing here imports another internal package or touches I/O. Methods
// are limited to validation and small pure helpers; JSON tags define the
// wire format.
package domain
