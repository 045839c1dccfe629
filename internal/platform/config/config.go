// Package config lee la configuración del proceso desde el entorno (y .env, cargado antes en main).
package config

import (
	"strings"
	"time"

	"pet-daycare/internal/domain/refs"

	"github.com/spf13/viper"
)

type Config struct {
	Port string

	// Storage: DB_DSN gana sobre MONGO_URI; sin ninguno se usa memoria.
	DBDSN         string
	DBMigrate     bool
	MongoURI      string
	MongoDatabase string

	LogLevel  string
	LogFormat string
	AppName   string

	CORSAllowedOrigins []string

	CustomerPetRefs              refs.Policy
	ScheduleRefs                 refs.Policy
	ScheduleRequireSkillCoverage bool

	MetricsEnabled bool
	SwaggerEnabled bool

	ShutdownTimeout time.Duration
}

// Load usa un viper propio para no depender del estado global.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("MONGO_DATABASE", "petdaycare")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "pet-daycare")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CUSTOMER_PET_REFS", string(refs.Drop))
	v.SetDefault("SCHEDULE_REFS", string(refs.Fail))
	v.SetDefault("SCHEDULE_REQUIRE_SKILL_COVERAGE", false)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return Config{
		Port:          strings.TrimSpace(v.GetString("PORT")),
		DBDSN:         strings.TrimSpace(v.GetString("DB_DSN")),
		DBMigrate:     v.GetBool("DB_MIGRATE"),
		MongoURI:      strings.TrimSpace(v.GetString("MONGO_URI")),
		MongoDatabase: strings.TrimSpace(v.GetString("MONGO_DATABASE")),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		AppName:   v.GetString("APP_NAME"),

		CORSAllowedOrigins: splitCSV(v.GetString("CORS_ALLOWED_ORIGINS")),

		CustomerPetRefs:              refs.ParsePolicy(v.GetString("CUSTOMER_PET_REFS"), refs.Drop),
		ScheduleRefs:                 refs.ParsePolicy(v.GetString("SCHEDULE_REFS"), refs.Fail),
		ScheduleRequireSkillCoverage: v.GetBool("SCHEDULE_REQUIRE_SKILL_COVERAGE"),

		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		SwaggerEnabled: v.GetBool("SWAGGER_ENABLED"),

		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

// Addr es la dirección de escucha (":8080").
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
