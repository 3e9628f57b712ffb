package config

import "time"

// defaults returns the values used for fields no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-safe-keeper",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			Backend: BackendMemory,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
