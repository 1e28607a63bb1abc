// /internal/database/seed.go
package database

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// SeedEncomendas grava uma encomenda de exemplo quando a tabela está vazia.
func SeedEncomendas(ctx context.Context, repo *Repository) error {
	existentes, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		log.WithField("total", len(existentes)).Info("Encomendas já existem, seed ignorado.")
		return nil
	}

	log.Info("Nenhuma encomenda encontrada, criando uma de exemplo...")
	criada, err := repo.Create(ctx, model.Values{
		"usuarios_id": int64(1),
		"material":    "aco",
		"chumbo":      2.0,
		"peso_laco":   1.5,
		"cor":         "azul",
		"urlImagem":   nil,
	})
	if err != nil {
		return err
	}
	log.WithField("id", criada["id"]).Info("Encomenda de exemplo criada com sucesso.")
	return nil
}
