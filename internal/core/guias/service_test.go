package guias

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vidaclin/faturamento/internal/core/glosa"
	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/vidaclin/faturamento/internal/storage"
)

// fakeStore guarda tudo em memória, chaveado por (clinicaID, id), para
// exercitar o serviço sem Firestore.
type fakeStore struct {
	guias  map[string]domain.Guia
	glosas map[string]domain.Glosa
	seq    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		guias:  make(map[string]domain.Guia),
		glosas: make(map[string]domain.Glosa),
	}
}

func (f *fakeStore) chave(clinicaID, id string) string {
	return clinicaID + "/" + id
}

func (f *fakeStore) CriarGuia(_ context.Context, guia domain.Guia) (domain.Guia, error) {
	if guia.ID == "" {
		f.seq++
		guia.ID = fmt.Sprintf("guia-%d", f.seq)
	}
	f.guias[f.chave(guia.ClinicaID, guia.ID)] = guia
	return guia, nil
}

func (f *fakeStore) ObterGuia(_ context.Context, clinicaID, guiaID string) (domain.Guia, error) {
	guia, ok := f.guias[f.chave(clinicaID, guiaID)]
	if !ok {
		return domain.Guia{}, storage.ErrNaoEncontrado
	}
	return guia, nil
}

func (f *fakeStore) AtualizarGuia(_ context.Context, guia domain.Guia) error {
	chave := f.chave(guia.ClinicaID, guia.ID)
	if _, ok := f.guias[chave]; !ok {
		return storage.ErrNaoEncontrado
	}
	f.guias[chave] = guia
	return nil
}

func (f *fakeStore) GuiasPorPeriodo(_ context.Context, clinicaID string, _, _ time.Time) ([]domain.Guia, error) {
	var out []domain.Guia
	for _, g := range f.guias {
		if g.ClinicaID == clinicaID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) CriarGlosa(_ context.Context, g domain.Glosa) (domain.Glosa, error) {
	if g.ID == "" {
		f.seq++
		g.ID = fmt.Sprintf("glosa-%d", f.seq)
	}
	f.glosas[f.chave(g.ClinicaID, g.ID)] = g
	return g, nil
}

func (f *fakeStore) ObterGlosa(_ context.Context, clinicaID, glosaID string) (domain.Glosa, error) {
	g, ok := f.glosas[f.chave(clinicaID, glosaID)]
	if !ok {
		return domain.Glosa{}, storage.ErrNaoEncontrado
	}
	return g, nil
}

func (f *fakeStore) AtualizarGlosa(_ context.Context, g domain.Glosa) error {
	chave := f.chave(g.ClinicaID, g.ID)
	if _, ok := f.glosas[chave]; !ok {
		return storage.ErrNaoEncontrado
	}
	f.glosas[chave] = g
	return nil
}

func (f *fakeStore) GlosasPorPeriodo(_ context.Context, clinicaID string, _, _ time.Time) ([]domain.Glosa, error) {
	var out []domain.Glosa
	for _, g := range f.glosas {
		if g.ClinicaID == clinicaID {
			out = append(out, g)
		}
	}
	return out, nil
}

func novoServicoTeste(store storage.Store) *service {
	return &service{
		store: store,
		agora: func() time.Time {
			return time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)
		},
	}
}

func guiaConsultaTeste() domain.GuiaConsulta {
	return domain.GuiaConsulta{
		RegistroANS:          "123456",
		NumeroCarteira:       "987654321",
		NomeBeneficiario:     "Maria da Silva",
		CodigoPrestador:      "CLIN001",
		NomeContratado:       "Clínica Vida",
		NomeProfissional:     "Dr. João Souza",
		ConselhoProfissional: "06",
		NumeroConselho:       "12345",
		UFConselho:           "35",
		TipoConsulta:         "1",
		DataAtendimento:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CodigoProcedimento:   "10101012",
		ValorProcedimento:    120.00,
	}
}

func guiaSADTTeste() domain.GuiaSADT {
	return domain.GuiaSADT{
		RegistroANS:                     "123456",
		NumeroCarteira:                  "987654321",
		NomeBeneficiario:                "Maria da Silva",
		CodigoPrestadorSolicitante:      "CLIN001",
		NomeContratadoSolicitante:       "Clínica Vida",
		NomeProfissionalSolicitante:     "Dr. João Souza",
		ConselhoProfissionalSolicitante: "06",
		NumeroConselhoSolicitante:       "12345",
		UFConselhoSolicitante:           "35",
		CodigoPrestadorExecutante:       "LAB002",
		NomeContratadoExecutante:        "Laboratório Central",
		CNESExecutante:                  "7654321",
		NomeProfissionalExecutante:      "Dra. Paula Nunes",
		ConselhoProfissionalExecutante:  "CRBM",
		NumeroConselhoExecutante:        "44556",
		UFConselhoExecutante:            "35",
		CaraterAtendimento:              "1",
		DataSolicitacao:                 time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		IndicacaoClinica:                "Check-up anual",
		ProcedimentosRealizados: []domain.ProcedimentoRealizado{
			{
				DataRealizacao:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				CodigoProcedimento:  "40301630",
				Descricao:           "Hemograma completo",
				QuantidadeRealizada: 1,
				ValorUnitario:       25.00,
			},
			{
				DataRealizacao:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				CodigoProcedimento:  "40302040",
				Descricao:           "Glicose",
				QuantidadeRealizada: 2,
				ValorUnitario:       15.00,
			},
		},
	}
}

func TestCriarGuiaConsulta(t *testing.T) {
	store := newFakeStore()
	svc := novoServicoTeste(store)

	guia, err := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", guiaConsultaTeste())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if guia.ID == "" {
		t.Error("guia criada deveria ter ID")
	}
	if guia.Status != domain.StatusRascunho {
		t.Errorf("status inicial = %s, esperava rascunho", guia.Status)
	}
	if guia.Tipo != domain.TipoConsulta {
		t.Errorf("tipo = %s", guia.Tipo)
	}
	if guia.ValorFaturado != 120.00 {
		t.Errorf("valorFaturado = %.2f, esperava 120.00", guia.ValorFaturado)
	}
	if !strings.HasPrefix(guia.NumeroGuiaPrestador, "CLIN20260110143000") {
		t.Errorf("número gerado = %q, esperava prefixo CLIN + token de tempo", guia.NumeroGuiaPrestador)
	}
	if !strings.Contains(guia.XML, "<ans:guiaConsulta>") {
		t.Error("XML da guia deveria conter o elemento guiaConsulta")
	}
	if !strings.Contains(guia.XML, "mensagemTISS") {
		t.Error("XML da guia deveria conter o envelope completo")
	}

	salva, err := store.ObterGuia(context.Background(), "clinica-abc", guia.ID)
	if err != nil {
		t.Fatalf("guia deveria estar persistida: %v", err)
	}
	if salva.NumeroGuiaPrestador != guia.NumeroGuiaPrestador {
		t.Error("guia persistida diverge da devolvida")
	}
}

func TestCriarGuiaConsultaInvalida(t *testing.T) {
	svc := novoServicoTeste(newFakeStore())

	gc := guiaConsultaTeste()
	gc.RegistroANS = "12"
	gc.NomeBeneficiario = ""
	gc.ValorProcedimento = -5

	_, err := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", gc)
	if err == nil {
		t.Fatal("esperava erro de validação")
	}
	var ev *ErrValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperava ErrValidacao, obteve %T", err)
	}
	if len(ev.Erros) != 3 {
		t.Errorf("esperava as 3 violações acumuladas, obteve %d: %v", len(ev.Erros), ev.Erros)
	}
}

func TestCriarGuiaSADTRecalculaTotais(t *testing.T) {
	svc := novoServicoTeste(newFakeStore())

	gs := guiaSADTTeste()
	// Totais de entrada inconsistentes são descartados e recalculados.
	gs.ProcedimentosRealizados[0].ValorTotal = 999
	gs.ValorTotalProcedimentos = 1
	gs.ValorTotalGeral = 2

	guia, err := svc.CriarGuiaSADT(context.Background(), "clinica-abc", gs)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if guia.SADT.ProcedimentosRealizados[0].ValorTotal != 25.00 {
		t.Errorf("valorTotal da linha 1 = %.2f, esperava 25.00", guia.SADT.ProcedimentosRealizados[0].ValorTotal)
	}
	if guia.SADT.ValorTotalProcedimentos != 55.00 {
		t.Errorf("valorTotalProcedimentos = %.2f, esperava 55.00", guia.SADT.ValorTotalProcedimentos)
	}
	if guia.ValorFaturado != 55.00 {
		t.Errorf("valorFaturado = %.2f, esperava 55.00", guia.ValorFaturado)
	}
	if !strings.Contains(guia.XML, "guiaSP-SADT") {
		t.Error("XML deveria conter o elemento guiaSP-SADT")
	}
}

func TestCriarGuiaSADTSemProcedimentos(t *testing.T) {
	svc := novoServicoTeste(newFakeStore())

	gs := guiaSADTTeste()
	gs.ProcedimentosRealizados = nil

	_, err := svc.CriarGuiaSADT(context.Background(), "clinica-abc", gs)
	var ev *ErrValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperava ErrValidacao, obteve %v", err)
	}
}

func TestAtualizarStatus(t *testing.T) {
	store := newFakeStore()
	svc := novoServicoTeste(store)
	guia, err := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", guiaConsultaTeste())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("transição válida", func(t *testing.T) {
		atualizada, err := svc.AtualizarStatus(context.Background(), "clinica-abc", guia.ID, domain.StatusEnviada)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizada.Status != domain.StatusEnviada {
			t.Errorf("status = %s", atualizada.Status)
		}
	})

	t.Run("status desconhecido", func(t *testing.T) {
		if _, err := svc.AtualizarStatus(context.Background(), "clinica-abc", guia.ID, "arquivada"); err == nil {
			t.Error("esperava erro para status desconhecido")
		}
	})

	t.Run("guia inexistente", func(t *testing.T) {
		_, err := svc.AtualizarStatus(context.Background(), "clinica-abc", "nao-existe", domain.StatusEnviada)
		if !errors.Is(err, storage.ErrNaoEncontrado) {
			t.Errorf("esperava ErrNaoEncontrado, obteve %v", err)
		}
	})
}

func TestRegistrarResposta(t *testing.T) {
	t.Run("pagamento integral vira paga", func(t *testing.T) {
		store := newFakeStore()
		svc := novoServicoTeste(store)
		guia, _ := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", guiaConsultaTeste())

		atualizada, err := svc.RegistrarResposta(context.Background(), "clinica-abc", guia.ID, RespostaOperadora{
			NumeroGuiaOperadora: "OP-9001",
			ValorPago:           120.00,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizada.Status != domain.StatusPaga {
			t.Errorf("status = %s, esperava paga", atualizada.Status)
		}
		if atualizada.NumeroGuiaOperadora != "OP-9001" || atualizada.ValorRecebido != 120.00 {
			t.Errorf("resposta não refletida: %+v", atualizada)
		}
	})

	t.Run("valor glosado vira glosada", func(t *testing.T) {
		store := newFakeStore()
		svc := novoServicoTeste(store)
		guia, _ := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", guiaConsultaTeste())

		atualizada, err := svc.RegistrarResposta(context.Background(), "clinica-abc", guia.ID, RespostaOperadora{
			ValorPago:    80.00,
			ValorGlosado: 40.00,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizada.Status != domain.StatusGlosada {
			t.Errorf("status = %s, esperava glosada", atualizada.Status)
		}
	})

	t.Run("status explícito prevalece", func(t *testing.T) {
		store := newFakeStore()
		svc := novoServicoTeste(store)
		guia, _ := svc.CriarGuiaConsulta(context.Background(), "clinica-abc", guiaConsultaTeste())

		atualizada, err := svc.RegistrarResposta(context.Background(), "clinica-abc", guia.ID, RespostaOperadora{
			ValorGlosado: 40.00,
			Status:       domain.StatusCancelada,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizada.Status != domain.StatusCancelada {
			t.Errorf("status = %s, esperava cancelada", atualizada.Status)
		}
	})
}

func TestImportarGlosaXML(t *testing.T) {
	store := newFakeStore()
	svc := novoServicoTeste(store)

	g, err := svc.ImportarGlosaXML(context.Background(), "clinica-abc", `
<ans:guiaConsulta>
  <ans:numeroGuiaPrestador>CLIN001</ans:numeroGuiaPrestador>
  <ans:valorInformado>120.00</ans:valorInformado>
  <ans:valorGlosado>120.00</ans:valorGlosado>
</ans:guiaConsulta>`)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if g.ID == "" || g.ClinicaID != "clinica-abc" {
		t.Errorf("glosa deveria ser persistida com a clínica: %+v", g)
	}
	if g.ValorAprovado != 0 || len(g.Itens) != 1 {
		t.Errorf("glosa normalizada inesperada: %+v", g)
	}
}

func TestImportarGlosaEstruturada(t *testing.T) {
	store := newFakeStore()
	svc := novoServicoTeste(store)

	g, err := svc.ImportarGlosa(context.Background(), "clinica-abc", glosa.RespostaOperadora{
		NumeroGuiaPrestador: "CLIN001",
		ValorOriginal:       200,
		ValorGlosado:        50,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if g.ValorAprovado != 150.00 {
		t.Errorf("valorAprovado = %.2f", g.ValorAprovado)
	}
	if g.Status != domain.GlosaPendente {
		t.Errorf("status = %s", g.Status)
	}
}

func TestCriarRecurso(t *testing.T) {
	store := newFakeStore()
	svc := novoServicoTeste(store)
	g, _ := svc.ImportarGlosa(context.Background(), "clinica-abc", glosa.RespostaOperadora{
		ValorOriginal: 200,
		ValorGlosado:  50,
	})

	t.Run("sem justificativa", func(t *testing.T) {
		if _, err := svc.CriarRecurso(context.Background(), "clinica-abc", g.ID, "   "); err == nil {
			t.Error("esperava erro para justificativa vazia")
		}
	})

	t.Run("recurso válido", func(t *testing.T) {
		atualizada, err := svc.CriarRecurso(context.Background(), "clinica-abc", g.ID, "Procedimento autorizado previamente")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if atualizada.Status != domain.GlosaEmRecurso {
			t.Errorf("status = %s, esperava em recurso", atualizada.Status)
		}
		if atualizada.Recurso == nil || atualizada.Recurso.Status != "enviado" {
			t.Errorf("recurso não anexado: %+v", atualizada.Recurso)
		}
		if atualizada.Recurso.DataEnvio.IsZero() {
			t.Error("dataEnvio do recurso deveria ser preenchida")
		}
	})

	t.Run("glosa inexistente", func(t *testing.T) {
		_, err := svc.CriarRecurso(context.Background(), "clinica-abc", "nao-existe", "Justificativa")
		if !errors.Is(err, storage.ErrNaoEncontrado) {
			t.Errorf("esperava ErrNaoEncontrado, obteve %v", err)
		}
	})
}
