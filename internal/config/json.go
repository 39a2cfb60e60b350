package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// [Duration] values that accept "30s" style strings.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		FrontendURL string `json:"frontend_url"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		AccessTokenSecret    string   `json:"access_token_secret"`
		RefreshTokenSecret   string   `json:"refresh_token_secret"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		BcryptCost           int      `json:"bcrypt_cost"`
		MaxLoginAttempts     int      `json:"max_login_attempts"`
		LockDuration         Duration `json:"lock_duration"`
		ResetTokenTTL        Duration `json:"reset_token_ttl"`
		VerificationTokenTTL Duration `json:"verification_token_ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
		AuthRateLimit   float64  `json:"auth_rate_limit"`
		AuthRateBurst   int      `json:"auth_rate_burst"`
		TrustProxy      bool     `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Mailer struct {
		URL            string   `json:"url"`
		APIKey         string   `json:"api_key"`
		From           string   `json:"from"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mailer,omitempty"`

	Media struct {
		Bucket          string   `json:"bucket"`
		Region          string   `json:"region"`
		Endpoint        string   `json:"endpoint"`
		AccessKeyID     string   `json:"access_key_id"`
		SecretAccessKey string   `json:"secret_access_key"`
		PublicBaseURL   string   `json:"public_base_url"`
		UploadURLExpiry Duration `json:"upload_url_expiry"`
	} `json:"media,omitempty"`

	Workers struct {
		HashPoolSize int `json:"hash_pool_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			FrontendURL: jsonCfg.App.FrontendURL,
			Version:     jsonCfg.App.Version,
		},
		Auth: Auth{
			AccessTokenSecret:    jsonCfg.Auth.AccessTokenSecret,
			RefreshTokenSecret:   jsonCfg.Auth.RefreshTokenSecret,
			TokenIssuer:          jsonCfg.Auth.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.Auth.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.Auth.RefreshTokenDuration),
			BcryptCost:           jsonCfg.Auth.BcryptCost,
			MaxLoginAttempts:     jsonCfg.Auth.MaxLoginAttempts,
			LockDuration:         time.Duration(jsonCfg.Auth.LockDuration),
			ResetTokenTTL:        time.Duration(jsonCfg.Auth.ResetTokenTTL),
			VerificationTokenTTL: time.Duration(jsonCfg.Auth.VerificationTokenTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:    jsonCfg.Server.AllowedOrigins,
			AuthRateLimit:     jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:     jsonCfg.Server.AuthRateBurst,
			TrustProxyHeaders: jsonCfg.Server.TrustProxy,
		},
		Mailer: Mailer{
			URL:            jsonCfg.Mailer.URL,
			APIKey:         jsonCfg.Mailer.APIKey,
			From:           jsonCfg.Mailer.From,
			RequestTimeout: time.Duration(jsonCfg.Mailer.RequestTimeout),
		},
		Media: Media{
			Bucket:          jsonCfg.Media.Bucket,
			Region:          jsonCfg.Media.Region,
			Endpoint:        jsonCfg.Media.Endpoint,
			AccessKeyID:     jsonCfg.Media.AccessKeyID,
			SecretAccessKey: jsonCfg.Media.SecretAccessKey,
			PublicBaseURL:   jsonCfg.Media.PublicBaseURL,
			UploadURLExpiry: time.Duration(jsonCfg.Media.UploadURLExpiry),
		},
		Workers: Workers{
			HashPoolSize: jsonCfg.Workers.HashPoolSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
