package config

import (
	"log"
	"os"
	"strconv"

	"preloved-backend/internal/domain"
)

func getMoneyEnv(key string, fallback domain.Money) domain.Money {
	if value, exists := os.LookupEnv(key); exists {
		if m, err := domain.ParseMoney(value); err == nil {
			return m
		}
		log.Printf("Invalid amount for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
