// internal/api/handlers/tuss_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vidaclin/faturamento/internal/api/responses"
	"github.com/vidaclin/faturamento/internal/core/tuss"
)

// TussHandler atende a busca de códigos TUSS usada pelo autocomplete do
// formulário de guias.
type TussHandler struct {
	service tuss.Service
}

func NewTussHandler(service tuss.Service) *TussHandler {
	return &TussHandler{service: service}
}

// limite padrão de resultados para a busca por tecla digitada.
const limitePadraoBusca = 20

func (h *TussHandler) HandleSearch(c *gin.Context) {
	query := c.Query("q")
	limit := limitePadraoBusca
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			responses.Error(c, http.StatusBadRequest, "Parâmetro limit inválido")
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, h.service.Search(query, limit))
}

func (h *TussHandler) HandleGetByCode(c *gin.Context) {
	codigo, ok := h.service.GetByCode(c.Param("codigo"))
	if !ok {
		responses.Error(c, http.StatusNotFound, "Código TUSS não encontrado")
		return
	}
	c.JSON(http.StatusOK, codigo)
}

func (h *TussHandler) HandleListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListGroups())
}

func (h *TussHandler) HandleGetByGroup(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetByGroup(c.Param("grupo")))
}
