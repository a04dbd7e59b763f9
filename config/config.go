package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Gemini     Gemini
	Attachment Attachment
	Log        Log
}

type Server struct {
	Port string
}

// Database selects the gorm dialect. Driver is "postgres" or "sqlite".
type Database struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

// Gemini carries model settings only; API keys are per user and live in the credential store.
type Gemini struct {
	Model       string
	Temperature float32
}

type Attachment struct {
	MaxBytes int64
}

type Log struct {
	Level  string
	Pretty bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("SQLITE_PATH", "assessly.db")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("ATTACHMENT_MAX_BYTES", 10<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	config := load(v)

	log.Info().
		Str("port", config.Server.Port).
		Str("databaseDriver", config.Database.Driver).
		Str("geminiModel", config.Gemini.Model).
		Int64("attachmentMaxBytes", config.Attachment.MaxBytes).
		Msg("Config loaded")
	return config, nil
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SQLitePath = v.GetString("SQLITE_PATH")

	config.Gemini.Model = v.GetString("GEMINI_MODEL")
	config.Gemini.Temperature = float32(v.GetFloat64("GEMINI_TEMPERATURE"))

	config.Attachment.MaxBytes = v.GetInt64("ATTACHMENT_MAX_BYTES")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")
	return &config
}
