package relatorios

import (
	"bytes"
	"testing"

	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestExportarResumoXLSX(t *testing.T) {
	guias := []domain.Guia{
		{Tipo: domain.TipoConsulta, Status: domain.StatusPaga, RegistroANS: "123456", ValorFaturado: 120, ValorRecebido: 120},
		{Tipo: domain.TipoSADT, Status: domain.StatusGlosada, RegistroANS: "654321", ValorFaturado: 300, ValorGlosado: 80, ValorRecebido: 220},
	}
	resumo := CalcularResumo(guias, inicioPeriodo, fimPeriodo)

	conteudo, err := ExportarResumoXLSX(resumo)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(conteudo) == 0 {
		t.Fatal("planilha não deveria ser vazia")
	}

	f, err := excelize.OpenReader(bytes.NewReader(conteudo))
	if err != nil {
		t.Fatalf("planilha gerada deveria abrir: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "Resumo" {
		t.Errorf("aba = %q, esperava Resumo", f.GetSheetName(0))
	}
	valor, err := f.GetCellValue("Resumo", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if valor != "Período" {
		t.Errorf("A1 = %q, esperava o cabeçalho do período", valor)
	}

	linhas, err := f.GetRows("Resumo")
	if err != nil {
		t.Fatal(err)
	}
	var temOperadora bool
	for _, linha := range linhas {
		if len(linha) > 0 && linha[0] == "654321" {
			temOperadora = true
		}
	}
	if !temOperadora {
		t.Error("planilha deveria listar a operadora 654321")
	}
}
