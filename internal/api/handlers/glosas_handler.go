// internal/api/handlers/glosas_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidaclin/faturamento/internal/api/responses"
	"github.com/vidaclin/faturamento/internal/core/glosa"
	"github.com/vidaclin/faturamento/internal/core/guias"
	"github.com/vidaclin/faturamento/internal/storage"
)

// GlosasHandler importa respostas de glosa das operadoras e acompanha os
// recursos e prazos.
type GlosasHandler struct {
	service guias.Service
	store   storage.Store
}

func NewGlosasHandler(service guias.Service, store storage.Store) *GlosasHandler {
	return &GlosasHandler{service: service, store: store}
}

// HandleImportarXML recebe o fragmento XML cru da operadora no corpo da
// requisição. O parser nunca rejeita entrada malformada: extrai o possível.
func (h *GlosasHandler) HandleImportarXML(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	corpo, err := io.ReadAll(c.Request.Body)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Não foi possível ler o corpo da requisição")
		return
	}

	g, err := h.service.ImportarGlosaXML(c.Request.Context(), clinicaID, string(corpo))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gravar a glosa", err.Error())
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GlosasHandler) HandleImportar(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var resposta glosa.RespostaOperadora
	if err := c.ShouldBindJSON(&resposta); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	g, err := h.service.ImportarGlosa(c.Request.Context(), clinicaID, resposta)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gravar a glosa", err.Error())
		return
	}
	c.JSON(http.StatusCreated, g)
}

type recursoRequest struct {
	Justificativa string `json:"justificativa" binding:"required"`
}

func (h *GlosasHandler) HandleCriarRecurso(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var req recursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Justificativa não informada")
		return
	}

	g, err := h.service.CriarRecurso(c.Request.Context(), clinicaID, c.Param("id"), req.Justificativa)
	if err != nil {
		if errors.Is(err, storage.ErrNaoEncontrado) {
			responses.Error(c, http.StatusNotFound, "Glosa não encontrada")
			return
		}
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}

// HandleObterPrazo informa os dias restantes para o recurso. Dias negativos
// significam prazo vencido; não é condição de erro.
func (h *GlosasHandler) HandleObterPrazo(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	g, err := h.store.ObterGlosa(c.Request.Context(), clinicaID, c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Glosa não encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prazoRecurso":  g.PrazoRecurso,
		"diasParaPrazo": glosa.DiasParaPrazoRecursoHoje(g),
		"dentroDoPrazo": glosa.DentroDoPrazoRecursoHoje(g),
	})
}

func (h *GlosasHandler) HandleMotivo(c *gin.Context) {
	c.JSON(http.StatusOK, glosa.DescricaoMotivo(c.Param("codigo")))
}

// HandleEstatisticas agrega as glosas do período em contagens e valores de
// recuperação.
func (h *GlosasHandler) HandleEstatisticas(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	inicio, fim, ok := periodoOuAborta(c)
	if !ok {
		return
	}

	glosas, err := h.store.GlosasPorPeriodo(c.Request.Context(), clinicaID, inicio, fim)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao consultar as glosas", err.Error())
		return
	}
	c.JSON(http.StatusOK, glosa.CalcularEstatisticas(glosas))
}

// periodoOuAborta lê os parâmetros inicio/fim no formato 2006-01-02.
func periodoOuAborta(c *gin.Context) (time.Time, time.Time, bool) {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetro inicio inválido (use AAAA-MM-DD)")
		return time.Time{}, time.Time{}, false
	}
	fim, err := time.Parse("2006-01-02", c.Query("fim"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetro fim inválido (use AAAA-MM-DD)")
		return time.Time{}, time.Time{}, false
	}
	// Fim inclusivo: estende até o último instante do dia.
	fim = fim.Add(24*time.Hour - time.Nanosecond)
	return inicio, fim, true
}
