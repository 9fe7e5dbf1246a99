// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string

	// AuthURL is the base URL of the GoTrue-compatible auth backend.
	AuthURL string

	// AuthKey is the project API key sent to the auth backend.
	AuthKey string

	// JWTSecret is the HMAC secret used to validate bearer tokens.
	JWTSecret string

	// JWTIssuer is the expected issuer claim of bearer tokens.
	JWTIssuer string

	// JWTAudience is the expected audience claim of bearer tokens.
	JWTAudience string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.AuthURL, "auth-url", "", "auth backend base URL")
	flag.StringVar(&options.AuthKey, "auth-key", "", "auth backend API key")
	flag.StringVar(&options.JWTSecret, "jwt-secret", "", "HMAC secret for bearer tokens")
	flag.StringVar(&options.JWTIssuer, "jwt-issuer", "", "expected token issuer")
	flag.StringVar(&options.JWTAudience, "jwt-audience", "authenticated", "expected token audience")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if authURL := os.Getenv("AUTH_URL"); authURL != "" {
		options.AuthURL = authURL
	}
	if authKey := os.Getenv("AUTH_KEY"); authKey != "" {
		options.AuthKey = authKey
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		options.JWTIssuer = issuer
	}
	if audience := os.Getenv("JWT_AUDIENCE"); audience != "" {
		options.JWTAudience = audience
	}

	return options
}
