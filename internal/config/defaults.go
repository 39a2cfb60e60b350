package config

import (
	"runtime"
	"time"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvironmentProduction,
			FrontendURL: "http://localhost:5173",
			Version:     "1.0.0",
		},
		Auth: Auth{
			TokenIssuer:          "vip-motors",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 7 * 24 * time.Hour,
			BcryptCost:           10,
			MaxLoginAttempts:     5,
			LockDuration:         2 * time.Hour,
			ResetTokenTTL:        10 * time.Minute,
			VerificationTokenTTL: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:     "localhost:5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:5173"},
			AuthRateLimit:   5,
			AuthRateBurst:   20,
		},
		Mailer: Mailer{
			From:           "VIP Motors <noreply@vipmotors.com>",
			RequestTimeout: 10 * time.Second,
		},
		Media: Media{
			Region:          "us-east-1",
			UploadURLExpiry: 15 * time.Minute,
		},
		Workers: Workers{
			HashPoolSize: runtime.NumCPU(),
		},
	}
}
