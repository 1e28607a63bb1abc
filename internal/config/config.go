// /internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// Config reúne a configuração do processo, lida das variáveis de ambiente.
type Config struct {
	Port             string        `envconfig:"PORT" default:"3000"`
	DatabaseURL      string        `envconfig:"DATABASE_URL"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"json"`
	AutoMigrate      bool          `envconfig:"AUTO_MIGRATE" default:"false"`
	EnableProdutos   bool          `envconfig:"ENABLE_PRODUTOS" default:"false"`
	CORSAllowOrigins []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout     time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
}

// Load carrega envFile (se existir) e depois lê o ambiente.
// Variáveis já definidas no ambiente têm precedência sobre o arquivo.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, "ler %s", envFile)
			}
			log.Debugf("Arquivo %s não encontrado, usando variáveis de ambiente", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "ler configuração do ambiente")
	}
	return &cfg, nil
}

// Addr é o endereço de escuta do servidor HTTP.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Resources devolve os recursos a montar, na ordem de registro.
func (c *Config) Resources() []model.Resource {
	resources := []model.Resource{model.Encomendas}
	if c.EnableProdutos {
		resources = append(resources, model.Produtos)
	}
	return resources
}

// ConfigureLogging aplica nível e formato ao logger padrão do logrus.
func (c *Config) ConfigureLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "LOG_LEVEL inválido %q", c.LogLevel)
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("LOG_FORMAT inválido %q", c.LogFormat)
	}
	return nil
}
