package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DB
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"shipsync"`

	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// CORS
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	// Mail (optional; invitation mail is skipped when unset)
	SMTPEmail    string `envconfig:"SMTP_EMAIL"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"587"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
