package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f upload directory for document blobs
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "30m")
//	-link-key base64url-encoded capability link key
//	-link-ttl capability link lifetime (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-mail-host/-mail-port/-mail-from SMTP settings
//	-base-url public URL prefix for emailed links
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var uploadDir string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var linkKey string
	var linkTTL time.Duration
	var requestTimeout time.Duration
	var mailHost string
	var mailPort int
	var mailFrom string
	var baseURL string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&uploadDir, "f", "", "Upload directory for document blobs")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 30m)")
	flag.StringVar(&linkKey, "link-key", "", "Base64url-encoded capability link key")
	flag.DurationVar(&linkTTL, "link-ttl", 0, "Capability link lifetime (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.StringVar(&mailHost, "mail-host", "", "SMTP host")
	flag.IntVar(&mailPort, "mail-port", 0, "SMTP port")
	flag.StringVar(&mailFrom, "mail-from", "", "Mail sender address")
	flag.StringVar(&baseURL, "base-url", "", "Public URL prefix for emailed links")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LinkKey:       linkKey,
			LinkTTL:       linkTTL,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: databaseDSN,
			},
			Files: Files{
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Host:    mailHost,
			Port:    mailPort,
			From:    mailFrom,
			BaseURL: baseURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
