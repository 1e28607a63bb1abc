package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ericoliveiras/encomendas-api/internal/database"
	"github.com/ericoliveiras/encomendas-api/internal/model"
)

const (
	msgNotFound = "não encontrado"
	msgInternal = "erro interno"
)

// Repository é o acesso a dados de um recurso; *database.Repository o implementa.
type Repository interface {
	List(ctx context.Context) ([]model.Record, error)
	Get(ctx context.Context, id int64) (model.Record, error)
	Create(ctx context.Context, values model.Values) (model.Record, error)
	Replace(ctx context.Context, id int64, values model.Values) (model.Record, error)
	Patch(ctx context.Context, id int64, values model.Values) (model.Record, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler expõe o CRUD de um recurso.
type ResourceHandler struct {
	Resource model.Resource
	Repo     Repository
}

// Register monta as rotas do recurso em /<nome> dentro de r.
func (h *ResourceHandler) Register(r gin.IRouter) {
	g := r.Group("/" + h.Resource.Name)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Replace)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

// List devolve todos os registros, do maior id para o menor.
func (h *ResourceHandler) List(c *gin.Context) {
	rows, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, "listar", err)
		return
	}
	if rows == nil {
		rows = []model.Record{}
	}
	c.JSON(http.StatusOK, rows)
}

// Get busca um registro pelo id da rota.
func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.fail(c, "mostrar", err)
		return
	}

	rec, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "mostrar", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create valida o corpo completo e insere; o banco gera o id.
func (h *ResourceHandler) Create(c *gin.Context) {
	raw, ok := h.readBody(c, "criar")
	if !ok {
		return
	}
	values, err := h.Resource.ParseFull(raw)
	if err != nil {
		h.fail(c, "criar", err)
		return
	}

	rec, err := h.Repo.Create(c.Request.Context(), values)
	if err != nil {
		h.fail(c, "criar", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Replace sobrescreve todos os campos do registro.
func (h *ResourceHandler) Replace(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.fail(c, "substituir", err)
		return
	}
	raw, ok := h.readBody(c, "substituir")
	if !ok {
		return
	}
	values, err := h.Resource.ParseFull(raw)
	if err != nil {
		h.fail(c, "substituir", err)
		return
	}

	rec, err := h.Repo.Replace(c.Request.Context(), id, values)
	if err != nil {
		h.fail(c, "substituir", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Patch atualiza só os campos enviados.
func (h *ResourceHandler) Patch(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.fail(c, "atualizar", err)
		return
	}
	raw, ok := h.readBody(c, "atualizar")
	if !ok {
		return
	}
	values, err := h.Resource.ParsePartial(raw)
	if err != nil {
		h.fail(c, "atualizar", err)
		return
	}

	rec, err := h.Repo.Patch(c.Request.Context(), id, values)
	if err != nil {
		h.fail(c, "atualizar", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete remove o registro e responde 204 sem corpo.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		h.fail(c, "deletar", err)
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "deletar", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) readBody(c *gin.Context, op string) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		h.fail(c, op, &model.ValidationError{Message: h.Resource.InvalidBodyMessage})
		return nil, false
	}
	return raw, true
}

// fail mapeia o erro para o status HTTP. Erros internos são logados e nunca expostos.
func (h *ResourceHandler) fail(c *gin.Context, op string, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"erro": verr.Message})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"erro": msgNotFound})
	default:
		log.WithFields(log.Fields{
			"recurso":    h.Resource.Name,
			"operacao":   op,
			"request_id": requestID(c),
		}).WithError(err).Error("falha ao acessar o banco")
		c.JSON(http.StatusInternalServerError, gin.H{"erro": msgInternal})
	}
}
