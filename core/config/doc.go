// Package config provides configuration management for s3util.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: browse HTTP server settings (port, API key)
//   - Storage: S3/MinIO endpoint, credentials and region
//   - Log: logging level and format
//
// Defaults come from `default` struct tags; environment variables override
// them using the section prefix (STORAGE_ENDPOINT, SERVER_PORT, LOG_LEVEL).
// Credentials left empty fall through to the storage SDK's own resolution
// chain.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
