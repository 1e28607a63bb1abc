package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// APIPrefix é o prefixo comum das coleções.
const APIPrefix = "/api"

// NewRouter monta o engine com middlewares, a rota de documentação e um grupo por recurso.
func NewRouter(handlers []*ResourceHandler, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestID(),
		logMiddleware(),
		gin.CustomRecovery(recoverInternal),
		cors.New(corsConfig(allowOrigins)),
	)

	resources := make([]model.Resource, 0, len(handlers))
	for _, h := range handlers {
		resources = append(resources, h.Resource)
	}
	r.GET("/", ShowHomePage(APIPrefix, resources))

	api := r.Group(APIPrefix)
	for _, h := range handlers {
		h.Register(api)
	}
	return r
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
	cfg.ExposeHeaders = []string{requestIDHeader}

	for _, o := range allowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowOrigins
	return cfg
}
