// internal/core/tiss/totals.go
package tiss

import (
	"math"

	"github.com/vidaclin/faturamento/internal/domain"
)

func round(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

// CalcularTotaisSADT soma o valorTotal de cada linha executada. O serializador
// confia nos totais da guia e não os recalcula: quem monta a guia deve chamar
// esta função antes para manter os totais coerentes com as linhas.
func CalcularTotaisSADT(procedimentos []domain.ProcedimentoRealizado) (valorTotalProcedimentos, valorTotalGeral float64) {
	for _, p := range procedimentos {
		valorTotalProcedimentos += p.ValorTotal
	}
	valorTotalProcedimentos = round(valorTotalProcedimentos, 2)
	return valorTotalProcedimentos, valorTotalProcedimentos
}

// CalcularTotalGeralSADT agrega os totais de categoria opcionais ao total dos
// procedimentos, preservando a invariante valorTotalGeral = soma de tudo.
func CalcularTotalGeralSADT(g domain.GuiaSADT) float64 {
	total := g.ValorTotalProcedimentos
	for _, v := range []*float64{g.ValorTaxasAlugueis, g.ValorMateriais, g.ValorMedicamentos, g.ValorOPME} {
		if v != nil {
			total += *v
		}
	}
	return round(total, 2)
}
