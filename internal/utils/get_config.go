package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Server configuration
	Port   string `yaml:"PORT"`
	IsProd bool   `yaml:"IS_PROD"`

	// Study store configuration
	DBPath string `yaml:"DB_PATH"`

	// Recipe catalog source
	RecipesCSV string `yaml:"RECIPES_CSV"`

	// Operator access to /admin/stats
	AdminKey string `yaml:"ADMIN_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return config.Port
	case "IS_PROD":
		if config.IsProd {
			return "true"
		}
		return "false"
	case "DB_PATH":
		return config.DBPath
	case "RECIPES_CSV":
		return config.RecipesCSV
	case "ADMIN_KEY":
		return config.AdminKey
	default:
		return ""
	}
}
