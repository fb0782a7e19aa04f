// internal/api/handlers/relatorios_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidaclin/faturamento/internal/api/responses"
	"github.com/vidaclin/faturamento/internal/core/relatorios"
)

// RelatoriosHandler atende o painel de faturamento da clínica.
type RelatoriosHandler struct {
	service relatorios.Service
}

func NewRelatoriosHandler(service relatorios.Service) *RelatoriosHandler {
	return &RelatoriosHandler{service: service}
}

func (h *RelatoriosHandler) HandleResumoFaturamento(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}
	inicio, fim, ok := periodoOuAborta(c)
	if !ok {
		return
	}

	resumo, err := h.service.ResumoFaturamento(c.Request.Context(), clinicaID, inicio, fim)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o resumo", err.Error())
		return
	}
	c.JSON(http.StatusOK, resumo)
}

func (h *RelatoriosHandler) HandleAnaliseGlosas(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}
	inicio, fim, ok := periodoOuAborta(c)
	if !ok {
		return
	}

	analise, err := h.service.AnaliseGlosas(c.Request.Context(), clinicaID, inicio, fim)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar a análise", err.Error())
		return
	}
	c.JSON(http.StatusOK, analise)
}

// HandleExportarResumo baixa o resumo do período como planilha.
func (h *RelatoriosHandler) HandleExportarResumo(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}
	inicio, fim, ok := periodoOuAborta(c)
	if !ok {
		return
	}

	resumo, err := h.service.ResumoFaturamento(c.Request.Context(), clinicaID, inicio, fim)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o resumo", err.Error())
		return
	}

	planilha, err := relatorios.ExportarResumoXLSX(resumo)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar a planilha", err.Error())
		return
	}

	fileName := fmt.Sprintf("ResumoFaturamento_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", planilha)
}
