// Package httputil holds the JSON plumbing shared by every handler: encoding
// responses with goccy/go-json, the {"detail": ...} error envelope the chat
// front end reads, and body decoding that answers 400 on malformed input.
package httputil
