package config

import "time"

const (
	// Service identity reported by GET /
	ServiceName    = "Health Dashboard API"
	ServiceVersion = "1.0.0"

	// Generative model call timeout
	RequestTimeout = 90 * time.Second

	// Graceful shutdown budget
	ShutdownTimeout = 10 * time.Second

	// Vitals summary looks at this many newest entries
	VitalsSummaryWindow = 10

	// Object storage layout
	DocumentsPrefix  = "documents"
	UploadTimeLayout = "20060102_150405"
	DefaultFileType  = "application/octet-stream"

	// Orphan sweep ignores objects younger than this
	OrphanGracePeriod = 1 * time.Hour
	StorageListLimit  = 100

	// Rate limit bookkeeping
	RateLimitCleanup = 60 * time.Second

	// Telegram alerts
	AlertTimeout    = 10 * time.Second
	MaxAlertMessage = 4096

	// Chat degrade message prefix when the model call fails
	ChatApology = "I apologize, but I'm having trouble generating a response right now. Error: "
)

// AllowedExtensions accepted by the upload endpoint.
var AllowedExtensions = []string{".pdf", ".txt"}
