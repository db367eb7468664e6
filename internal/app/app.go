package app

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	TokenSecret   string
	TokenLifetime time.Duration
	AdminEmail    string
	// AdminPassHash is always bcrypt: either ADMIN_PASSWORD_HASH as
	// supplied, or hashed once here from ADMIN_PASSWORD.
	AdminPassHash string
}

// Fallback so the service still runs unconfigured. Insecure for
// production use; set TOKEN_SECRET.
const defaultSecret = "your-super-secret-key-change-in-production"

func LoadConfig() Config {
	addr := getenv("ADDR", ":8080")
	dbURL := getenv("DATABASE_URL", "./blog.db")

	secret := getenv("TOKEN_SECRET", "")
	if secret == "" {
		log.Printf("app.LoadConfig: TOKEN_SECRET not set, using insecure default")
		secret = defaultSecret
	}

	lifeHours := getenv("TOKEN_LIFETIME_HOURS", "168") // 7 days
	dur, err := time.ParseDuration(lifeHours + "h")
	if err != nil { dur = 168 * time.Hour }

	email := getenv("ADMIN_EMAIL", "admin@example.com")
	hash := getenv("ADMIN_PASSWORD_HASH", "")
	if hash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(getenv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("app.LoadConfig: hashing admin password: %v", err)
		}
		hash = string(h)
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   dbURL,
		TokenSecret:   secret,
		TokenLifetime: dur,
		AdminEmail:    email,
		AdminPassHash: hash,
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" { return def }
	return v
}

func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
