package tiss

import (
	"strings"
	"testing"

	"github.com/vidaclin/faturamento/internal/domain"
)

func TestValidateGuiaConsultaValida(t *testing.T) {
	if erros := ValidateGuiaConsulta(guiaConsultaValida()); len(erros) != 0 {
		t.Errorf("guia válida não deveria gerar erros, obteve: %v", erros)
	}
}

// TestValidateGuiaConsultaAcumulaErros verifica que todas as violações são
// reportadas de uma vez, não apenas a primeira.
func TestValidateGuiaConsultaAcumulaErros(t *testing.T) {
	guia := guiaConsultaValida()
	guia.RegistroANS = "12"      // 1: não tem 6 dígitos
	guia.NumeroCarteira = ""     // 2
	guia.NomeBeneficiario = "  " // 3
	guia.NumeroConselho = ""     // 4
	guia.ValorProcedimento = -1  // 5

	erros := ValidateGuiaConsulta(guia)
	if len(erros) != 5 {
		t.Fatalf("esperava 5 erros, obteve %d: %v", len(erros), erros)
	}
	esperados := []string{"registroANS", "numeroCarteira", "nomeBeneficiario", "numeroConselho", "valorProcedimento"}
	for _, campo := range esperados {
		encontrado := false
		for _, e := range erros {
			if strings.Contains(e, campo) {
				encontrado = true
				break
			}
		}
		if !encontrado {
			t.Errorf("esperava erro mencionando %q em %v", campo, erros)
		}
	}
}

func TestValidateGuiaSADTValida(t *testing.T) {
	if erros := ValidateGuiaSADT(guiaSADTValida()); len(erros) != 0 {
		t.Errorf("guia válida não deveria gerar erros, obteve: %v", erros)
	}
}

func TestValidateGuiaSADTSemProcedimentos(t *testing.T) {
	guia := guiaSADTValida()
	guia.ProcedimentosRealizados = nil

	erros := ValidateGuiaSADT(guia)
	if len(erros) != 1 {
		t.Fatalf("esperava exatamente 1 erro, obteve %v", erros)
	}
	if !strings.Contains(erros[0], "ao menos um procedimento") {
		t.Errorf("mensagem inesperada: %s", erros[0])
	}
}

func TestValidateGuiaSADTLinhasIndividuais(t *testing.T) {
	guia := guiaSADTValida()
	guia.ProcedimentosRealizados[1].CodigoProcedimento = ""
	guia.ProcedimentosRealizados[1].QuantidadeRealizada = 0

	erros := ValidateGuiaSADT(guia)
	if len(erros) != 2 {
		t.Fatalf("esperava 2 erros da segunda linha, obteve %v", erros)
	}
	for _, e := range erros {
		if !strings.Contains(e, "procedimento 2:") {
			t.Errorf("erro deveria apontar a linha 2: %s", e)
		}
	}
}

func TestValidateGuiaSADTExecutanteObrigatorio(t *testing.T) {
	guia := guiaSADTValida()
	guia.CodigoPrestadorExecutante = ""
	guia.NomeContratadoExecutante = ""
	guia.CNESExecutante = ""
	guia.IndicacaoClinica = ""

	erros := ValidateGuiaSADT(guia)
	if len(erros) != 4 {
		t.Fatalf("esperava 4 erros, obteve %d: %v", len(erros), erros)
	}
}

// TestValidateGuiaSADTProfissionalExecutanteObrigatorio garante que o
// profissional executante é exigido em paralelo ao solicitante: o contratado
// sozinho não basta.
func TestValidateGuiaSADTProfissionalExecutanteObrigatorio(t *testing.T) {
	guia := guiaSADTValida()
	guia.NomeProfissionalExecutante = ""
	guia.ConselhoProfissionalExecutante = ""
	guia.NumeroConselhoExecutante = ""
	guia.UFConselhoExecutante = ""

	erros := ValidateGuiaSADT(guia)
	if len(erros) != 4 {
		t.Fatalf("esperava 4 erros, obteve %d: %v", len(erros), erros)
	}
	esperados := []string{
		"nomeProfissionalExecutante",
		"conselhoProfissionalExecutante",
		"numeroConselhoExecutante",
		"ufConselhoExecutante",
	}
	for _, campo := range esperados {
		encontrado := false
		for _, e := range erros {
			if strings.Contains(e, campo) {
				encontrado = true
				break
			}
		}
		if !encontrado {
			t.Errorf("esperava erro mencionando %q em %v", campo, erros)
		}
	}
}

func TestValidateNaoValidaNaSerializacao(t *testing.T) {
	// A serialização confia na validação prévia: entrada inválida produz
	// XML malformado, nunca pânico.
	var guia domain.GuiaConsulta
	xml := GerarXMLConsulta(guia, Opcoes{})
	if !strings.Contains(xml, "<ans:guiaConsulta>") {
		t.Error("mesmo vazia, a guia deve produzir o elemento sem pânico")
	}
}
