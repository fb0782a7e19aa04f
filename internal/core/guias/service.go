// internal/core/guias/service.go
package guias

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vidaclin/faturamento/internal/core/glosa"
	"github.com/vidaclin/faturamento/internal/core/tiss"
	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/vidaclin/faturamento/internal/storage"
)

// ErrValidacao carrega todas as regras violadas de uma guia, para que o
// chamador exiba os problemas de uma só vez.
type ErrValidacao struct {
	Erros []string
}

func (e *ErrValidacao) Error() string {
	return "guia inválida: " + strings.Join(e.Erros, "; ")
}

// RespostaOperadora é o retorno administrativo da operadora sobre uma guia
// enviada: numeração própria, valores e novo status.
type RespostaOperadora struct {
	NumeroGuiaOperadora string            `json:"numeroGuiaOperadora"`
	ValorPago           float64           `json:"valorPago"`
	ValorGlosado        float64           `json:"valorGlosado"`
	Status              domain.StatusGuia `json:"status,omitempty"`
}

// Service orquestra o ciclo de faturamento: montar, validar, serializar e
// persistir guias, e reconciliar as respostas da operadora.
type Service interface {
	CriarGuiaConsulta(ctx context.Context, clinicaID string, guia domain.GuiaConsulta) (domain.Guia, error)
	CriarGuiaSADT(ctx context.Context, clinicaID string, guia domain.GuiaSADT) (domain.Guia, error)
	ObterGuia(ctx context.Context, clinicaID, guiaID string) (domain.Guia, error)
	AtualizarStatus(ctx context.Context, clinicaID, guiaID string, status domain.StatusGuia) (domain.Guia, error)
	RegistrarResposta(ctx context.Context, clinicaID, guiaID string, resposta RespostaOperadora) (domain.Guia, error)
	ImportarGlosaXML(ctx context.Context, clinicaID, fragmento string) (domain.Glosa, error)
	ImportarGlosa(ctx context.Context, clinicaID string, resposta glosa.RespostaOperadora) (domain.Glosa, error)
	CriarRecurso(ctx context.Context, clinicaID, glosaID, justificativa string) (domain.Glosa, error)
}

type service struct {
	store storage.Store
	agora func() time.Time
}

// NewService cria o serviço de guias sobre o Store.
func NewService(store storage.Store) Service {
	return &service{store: store, agora: time.Now}
}

var statusValidos = map[domain.StatusGuia]bool{
	domain.StatusRascunho:  true,
	domain.StatusEnviada:   true,
	domain.StatusPaga:      true,
	domain.StatusGlosada:   true,
	domain.StatusCancelada: true,
}

var naoAlfanumerico = regexp.MustCompile(`[^A-Z0-9]`)

// gerarNumeroGuia monta um número de guia resistente a colisão: prefixo da
// clínica + token de tempo + sufixo aleatório.
func (s *service) gerarNumeroGuia(clinicaID string) string {
	prefixo := naoAlfanumerico.ReplaceAllString(strings.ToUpper(clinicaID), "")
	if len(prefixo) > 4 {
		prefixo = prefixo[:4]
	}
	if prefixo == "" {
		prefixo = "GUIA"
	}
	token := s.agora().UTC().Format("20060102150405")
	sufixo := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s%s%s", prefixo, token, sufixo)
}

func (s *service) CriarGuiaConsulta(ctx context.Context, clinicaID string, gc domain.GuiaConsulta) (domain.Guia, error) {
	if gc.NumeroGuiaPrestador == "" {
		gc.NumeroGuiaPrestador = s.gerarNumeroGuia(clinicaID)
	}
	if gc.CodigoTabela == "" {
		gc.CodigoTabela = "22"
	}

	if erros := tiss.ValidateGuiaConsulta(gc); len(erros) > 0 {
		return domain.Guia{}, &ErrValidacao{Erros: erros}
	}

	guia := domain.Guia{
		ClinicaID:           clinicaID,
		Tipo:                domain.TipoConsulta,
		Status:              domain.StatusRascunho,
		RegistroANS:         gc.RegistroANS,
		NumeroGuiaPrestador: gc.NumeroGuiaPrestador,
		DataEmissao:         s.agora().UTC(),
		ValorFaturado:       gc.ValorProcedimento,
		XML:                 tiss.GerarXMLConsulta(gc, tiss.Opcoes{}),
		Consulta:            &gc,
	}
	return s.store.CriarGuia(ctx, guia)
}

func (s *service) CriarGuiaSADT(ctx context.Context, clinicaID string, gs domain.GuiaSADT) (domain.Guia, error) {
	if gs.NumeroGuiaPrestador == "" {
		gs.NumeroGuiaPrestador = s.gerarNumeroGuia(clinicaID)
	}

	// O serializador confia nos totais: recalcula linha a linha antes de
	// validar para manter a invariante quantidade × unitário = total.
	for i := range gs.ProcedimentosRealizados {
		p := &gs.ProcedimentosRealizados[i]
		if p.CodigoTabela == "" {
			p.CodigoTabela = "22"
		}
		p.ValorTotal = round2(p.QuantidadeRealizada * p.ValorUnitario)
	}
	gs.ValorTotalProcedimentos, _ = tiss.CalcularTotaisSADT(gs.ProcedimentosRealizados)
	gs.ValorTotalGeral = tiss.CalcularTotalGeralSADT(gs)

	if erros := tiss.ValidateGuiaSADT(gs); len(erros) > 0 {
		return domain.Guia{}, &ErrValidacao{Erros: erros}
	}

	guia := domain.Guia{
		ClinicaID:           clinicaID,
		Tipo:                domain.TipoSADT,
		Status:              domain.StatusRascunho,
		RegistroANS:         gs.RegistroANS,
		NumeroGuiaPrestador: gs.NumeroGuiaPrestador,
		DataEmissao:         s.agora().UTC(),
		ValorFaturado:       gs.ValorTotalGeral,
		XML:                 tiss.GerarXMLSADT(gs, tiss.Opcoes{}),
		SADT:                &gs,
	}
	return s.store.CriarGuia(ctx, guia)
}

func (s *service) ObterGuia(ctx context.Context, clinicaID, guiaID string) (domain.Guia, error) {
	return s.store.ObterGuia(ctx, clinicaID, guiaID)
}

func (s *service) AtualizarStatus(ctx context.Context, clinicaID, guiaID string, status domain.StatusGuia) (domain.Guia, error) {
	if !statusValidos[status] {
		return domain.Guia{}, fmt.Errorf("status de guia desconhecido: %q", status)
	}
	guia, err := s.store.ObterGuia(ctx, clinicaID, guiaID)
	if err != nil {
		return domain.Guia{}, err
	}
	guia.Status = status
	if err := s.store.AtualizarGuia(ctx, guia); err != nil {
		return domain.Guia{}, err
	}
	return guia, nil
}

func (s *service) RegistrarResposta(ctx context.Context, clinicaID, guiaID string, resposta RespostaOperadora) (domain.Guia, error) {
	guia, err := s.store.ObterGuia(ctx, clinicaID, guiaID)
	if err != nil {
		return domain.Guia{}, err
	}

	guia.NumeroGuiaOperadora = resposta.NumeroGuiaOperadora
	guia.ValorRecebido = round2(resposta.ValorPago)
	guia.ValorGlosado = round2(resposta.ValorGlosado)

	switch {
	case resposta.Status != "":
		if !statusValidos[resposta.Status] {
			return domain.Guia{}, fmt.Errorf("status de guia desconhecido: %q", resposta.Status)
		}
		guia.Status = resposta.Status
	case guia.ValorGlosado > 0:
		guia.Status = domain.StatusGlosada
	default:
		guia.Status = domain.StatusPaga
	}

	if err := s.store.AtualizarGuia(ctx, guia); err != nil {
		return domain.Guia{}, err
	}
	return guia, nil
}

func (s *service) ImportarGlosaXML(ctx context.Context, clinicaID, fragmento string) (domain.Glosa, error) {
	g := glosa.ParseXML(fragmento)
	g.ClinicaID = clinicaID
	return s.store.CriarGlosa(ctx, g)
}

func (s *service) ImportarGlosa(ctx context.Context, clinicaID string, resposta glosa.RespostaOperadora) (domain.Glosa, error) {
	g := glosa.ParseResposta(resposta)
	g.ClinicaID = clinicaID
	return s.store.CriarGlosa(ctx, g)
}

func (s *service) CriarRecurso(ctx context.Context, clinicaID, glosaID, justificativa string) (domain.Glosa, error) {
	if strings.TrimSpace(justificativa) == "" {
		return domain.Glosa{}, fmt.Errorf("justificativa do recurso é obrigatória")
	}
	g, err := s.store.ObterGlosa(ctx, clinicaID, glosaID)
	if err != nil {
		return domain.Glosa{}, err
	}
	g.Recurso = &domain.RecursoGlosa{
		Justificativa: justificativa,
		DataEnvio:     s.agora().UTC(),
		Status:        "enviado",
	}
	g.Status = domain.GlosaEmRecurso
	if err := s.store.AtualizarGlosa(ctx, g); err != nil {
		return domain.Glosa{}, err
	}
	return g, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
