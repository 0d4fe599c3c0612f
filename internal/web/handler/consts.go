// Package handler holds constants and helpers shared by the web handlers.
package handler

const (
	// APIRoot is the path prefix of the JSON API.
	APIRoot = "/api"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// Message is the standard JSON body for errors and confirmations.
type Message struct {
	Message string `json:"message"`
}
