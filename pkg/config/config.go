package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Company CompanyConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CompanyConfig identidad del emisor que encabeza todos los documentos.
// LogoURL vacío desactiva la imagen en el PDF.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	LogoURL string
}

// SessionConfig ciclo de vida del estado en memoria.
type SessionConfig struct {
	TTLMinutes       int // caducidad de un ledger inactivo
	NotifyTTLSeconds int // autodescarte de notificaciones
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "orcamento"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Company: CompanyConfig{
			Name:    getString(v, "COMPANY_NAME", "Empresa Exemplo S.L."),
			Address: getString(v, "COMPANY_ADDRESS", "Calle Mayor, 123, 28001 Madrid"),
			Phone:   getString(v, "COMPANY_PHONE", "+34 91 123 45 67"),
			LogoURL: getString(v, "COMPANY_LOGO_URL", ""),
		},
		Session: SessionConfig{
			TTLMinutes:       getInt(v, "SESSION_TTL_MINUTES", 60),
			NotifyTTLSeconds: getInt(v, "NOTIFY_TTL_SECONDS", 3),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
