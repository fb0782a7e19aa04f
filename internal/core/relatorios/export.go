// internal/core/relatorios/export.go
package relatorios

import (
	"fmt"
	"sort"

	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/xuri/excelize/v2"
)

var ordemStatus = []domain.StatusGuia{
	domain.StatusRascunho,
	domain.StatusEnviada,
	domain.StatusPaga,
	domain.StatusGlosada,
	domain.StatusCancelada,
}

// ExportarResumoXLSX gera a planilha do resumo de faturamento para download
// pela administração da clínica.
func ExportarResumoXLSX(resumo domain.ResumoFaturamento) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const aba = "Resumo"
	f.SetSheetName(f.GetSheetName(0), aba)

	linha := 1
	set := func(col string, valor interface{}) {
		f.SetCellValue(aba, fmt.Sprintf("%s%d", col, linha), valor)
	}

	set("A", "Período")
	set("B", resumo.Inicio.Format("02/01/2006"))
	set("C", resumo.Fim.Format("02/01/2006"))
	linha += 2

	set("A", "Total de guias")
	set("B", resumo.TotalGuias)
	linha++
	set("A", "Valor faturado")
	set("B", resumo.ValorFaturado)
	linha++
	set("A", "Valor glosado")
	set("B", resumo.ValorGlosado)
	linha++
	set("A", "Valor recebido")
	set("B", resumo.ValorRecebido)
	linha++
	set("A", "Taxa de glosa (%)")
	set("B", resumo.TaxaGlosa)
	linha += 2

	set("A", "Status")
	set("B", "Guias")
	linha++
	for _, status := range ordemStatus {
		set("A", string(status))
		set("B", resumo.PorStatus[status])
		linha++
	}
	linha++

	set("A", "Operadora (registro ANS)")
	set("B", "Guias")
	set("C", "Faturado")
	set("D", "Glosado")
	set("E", "Recebido")
	linha++

	registros := make([]string, 0, len(resumo.PorOperadora))
	for registro := range resumo.PorOperadora {
		registros = append(registros, registro)
	}
	sort.Strings(registros)
	for _, registro := range registros {
		op := resumo.PorOperadora[registro]
		set("A", registro)
		set("B", op.Guias)
		set("C", op.ValorFaturado)
		set("D", op.ValorGlosado)
		set("E", op.ValorRecebido)
		linha++
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha do resumo: %w", err)
	}
	return buffer.Bytes(), nil
}
