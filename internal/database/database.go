// /internal/database/database.go
package database

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// Connect abre o pool de conexões com o Postgres apontado por dsn.
// O *gorm.DB devolvido é injetado em quem precisa; não há variável global.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL não definido")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "falha ao conectar ao banco de dados")
	}

	log.Info("Conexão com o banco de dados estabelecida.")
	return db, nil
}

// Migrate cria ou ajusta as tabelas dos recursos.
func Migrate(db *gorm.DB) error {
	log.Info("Executando migrações do banco de dados...")
	if err := db.AutoMigrate(&model.Encomenda{}, &model.Produto{}); err != nil {
		return errors.Wrap(err, "falha ao executar migrações")
	}
	log.Info("Migrações concluídas com sucesso.")
	return nil
}

// Close fecha o pool subjacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
