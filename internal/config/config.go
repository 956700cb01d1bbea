package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port     string
	DataPath string
}

// Load reads configuration from the environment with deployment defaults.
// DataPath is resolved relative to the working directory, never hardcoded
// absolute, so deployments can relocate the dataset freely.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/processos/dataset.csv"
	}

	return &Config{
		Port:     port,
		DataPath: dataPath,
	}
}
