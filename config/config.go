package config

import "os"

type Config struct {
	ServerPort   string
	DatabasePath string
	AppPassword  string
	MaxFileSize  int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "analysis_history.db"
	}

	return &Config{
		ServerPort:   serverPort,
		DatabasePath: databasePath,
		AppPassword:  os.Getenv("APP_PASSWORD"),
		MaxFileSize:  32 * 1024 * 1024, // 32 MB
	}
}
