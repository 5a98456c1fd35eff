package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// simulation knobs: how fast the cosmetic order tracking advances,
	// how often the courier position feed ticks, and how long the
	// canned chat reply waits
	TrackStepInterval time.Duration
	PositionInterval  time.Duration
	ChatReplyDelay    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using defaults")
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
		TrackStepInterval: getDuration("TRACK_STEP_INTERVAL", 3*time.Second),
		PositionInterval:  getDuration("POSITION_INTERVAL", 2*time.Second),
		ChatReplyDelay:    getDuration("CHAT_REPLY_DELAY", 2*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid duration for %s: %q, using default", key, v)
	return fallback
}
