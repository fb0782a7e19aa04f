// internal/api/handlers/guias_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidaclin/faturamento/internal/api/middleware"
	"github.com/vidaclin/faturamento/internal/api/responses"
	"github.com/vidaclin/faturamento/internal/core/guias"
	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/vidaclin/faturamento/internal/storage"
)

// GuiasHandler atende o ciclo de vida das guias: criação, consulta, status e
// reconciliação com a resposta da operadora.
type GuiasHandler struct {
	service guias.Service
}

func NewGuiasHandler(service guias.Service) *GuiasHandler {
	return &GuiasHandler{service: service}
}

func clinicaOuAborta(c *gin.Context) (string, bool) {
	clinicaID, ok := middleware.ClinicaFromContext(c)
	if !ok {
		responses.Error(c, http.StatusForbidden, "Token sem clínica associada")
	}
	return clinicaID, ok
}

func (h *GuiasHandler) respondeErroCriacao(c *gin.Context, err error) {
	var ev *guias.ErrValidacao
	if errors.As(err, &ev) {
		responses.ErrorList(c, http.StatusUnprocessableEntity, "Guia inválida", ev.Erros)
		return
	}
	responses.Error(c, http.StatusInternalServerError, "Erro ao criar a guia", err.Error())
}

func (h *GuiasHandler) HandleCriarConsulta(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var gc domain.GuiaConsulta
	if err := c.ShouldBindJSON(&gc); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	guia, err := h.service.CriarGuiaConsulta(c.Request.Context(), clinicaID, gc)
	if err != nil {
		h.respondeErroCriacao(c, err)
		return
	}
	c.JSON(http.StatusCreated, guia)
}

func (h *GuiasHandler) HandleCriarSADT(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var gs domain.GuiaSADT
	if err := c.ShouldBindJSON(&gs); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	guia, err := h.service.CriarGuiaSADT(c.Request.Context(), clinicaID, gs)
	if err != nil {
		h.respondeErroCriacao(c, err)
		return
	}
	c.JSON(http.StatusCreated, guia)
}

func (h *GuiasHandler) HandleObter(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	guia, err := h.service.ObterGuia(c.Request.Context(), clinicaID, c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Guia não encontrada")
		return
	}
	c.JSON(http.StatusOK, guia)
}

// HandleBaixarXML devolve o documento TISS da guia como anexo.
func (h *GuiasHandler) HandleBaixarXML(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	guia, err := h.service.ObterGuia(c.Request.Context(), clinicaID, c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Guia não encontrada")
		return
	}

	fileName := fmt.Sprintf("guia_%s.xml", guia.NumeroGuiaPrestador)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(guia.XML))
}

type statusRequest struct {
	Status domain.StatusGuia `json:"status" binding:"required"`
}

func (h *GuiasHandler) HandleAtualizarStatus(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Status não informado")
		return
	}

	guia, err := h.service.AtualizarStatus(c.Request.Context(), clinicaID, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNaoEncontrado) {
			responses.Error(c, http.StatusNotFound, "Guia não encontrada")
			return
		}
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, guia)
}

func (h *GuiasHandler) HandleRegistrarResposta(c *gin.Context) {
	clinicaID, ok := clinicaOuAborta(c)
	if !ok {
		return
	}

	var resposta guias.RespostaOperadora
	if err := c.ShouldBindJSON(&resposta); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	guia, err := h.service.RegistrarResposta(c.Request.Context(), clinicaID, c.Param("id"), resposta)
	if err != nil {
		if errors.Is(err, storage.ErrNaoEncontrado) {
			responses.Error(c, http.StatusNotFound, "Guia não encontrada")
			return
		}
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, guia)
}
