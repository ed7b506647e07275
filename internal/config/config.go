package config

import (
	"os"
	"strconv"
)

type Config struct {
	Catalog CatalogConfig `json:"catalog"`
	Storage StorageConfig `json:"storage"`
	Shop    ShopConfig    `json:"shop"`
}

type CatalogConfig struct {
	URL        string `json:"url"`
	GroupsPath string `json:"groups_path"` // optional override for the embedded category groups file
}

type StorageConfig struct {
	Dir string `json:"dir"`
}

type ShopConfig struct {
	PageSize       int `json:"page_size"`
	RecentLimit    int `json:"recent_limit"`
	SuggestedCount int `json:"suggested_count"`
}

func Load() (*Config, error) {
	config := &Config{
		Catalog: CatalogConfig{
			URL:        getEnvOrDefault("CATALOG_URL", "https://dummyjson.com/products?limit=0"),
			GroupsPath: os.Getenv("CATEGORY_GROUPS_PATH"),
		},
		Storage: StorageConfig{
			Dir: getEnvOrDefault("DATA_DIR", "data"),
		},
		Shop: ShopConfig{
			PageSize:       getEnvIntOrDefault("PAGE_SIZE", 9),
			RecentLimit:    getEnvIntOrDefault("RECENT_LIMIT", 5),
			SuggestedCount: getEnvIntOrDefault("SUGGESTED_COUNT", 10),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
