package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericoliveiras/encomendas-api/internal/model"
)

// ShowHomePage lista as rotas disponíveis e o formato do corpo.
// As rotas do primeiro recurso ficam no nível de cima (LISTAR, MOSTRAR, ...);
// os demais recursos aparecem aninhados pelo nome.
// O mapa é montado uma vez, quando as rotas são registradas.
func ShowHomePage(prefix string, resources []model.Resource) gin.HandlerFunc {
	rotas := gin.H{}
	for i, r := range resources {
		doRecurso := rotasDoRecurso(prefix, r)
		if i == 0 {
			for op, rota := range doRecurso {
				rotas[op] = rota
			}
			continue
		}
		rotas[r.Name] = doRecurso
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rotas)
	}
}

func rotasDoRecurso(prefix string, r model.Resource) map[string]string {
	base := prefix + "/" + r.Name
	rotas := map[string]string{
		"LISTAR":     "GET " + base,
		"MOSTRAR":    "GET " + base + "/:id",
		"CRIAR":      "POST " + base + " BODY: " + r.BodyShape(false),
		"SUBSTITUIR": "PUT " + base + "/:id BODY: " + r.BodyShape(false),
		"ATUALIZAR":  "PATCH " + base + "/:id BODY: " + r.BodyShape(true),
		"DELETAR":    "DELETE " + base + "/:id",
	}
	if r.Note != "" {
		rotas["OBSERVACAO"] = r.Note
	}
	return rotas
}
