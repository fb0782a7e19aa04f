// internal/core/relatorios/resumo.go
package relatorios

import (
	"math"
	"sort"
	"time"

	"github.com/vidaclin/faturamento/internal/core/glosa"
	"github.com/vidaclin/faturamento/internal/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalcularResumo agrega um conjunto de guias no resumo de faturamento do
// período. Todos os baldes de tipo e status aparecem sempre, mesmo zerados:
// o painel não trata mapa esparso.
func CalcularResumo(guias []domain.Guia, inicio, fim time.Time) domain.ResumoFaturamento {
	resumo := domain.ResumoFaturamento{
		Inicio: inicio,
		Fim:    fim,
		PorTipo: map[domain.TipoGuia]int{
			domain.TipoConsulta: 0,
			domain.TipoSADT:     0,
		},
		PorStatus: map[domain.StatusGuia]int{
			domain.StatusRascunho:  0,
			domain.StatusEnviada:   0,
			domain.StatusPaga:      0,
			domain.StatusGlosada:   0,
			domain.StatusCancelada: 0,
		},
		PorOperadora: map[string]domain.ResumoOperadora{},
	}

	for _, g := range guias {
		resumo.TotalGuias++
		resumo.PorTipo[g.Tipo]++
		resumo.PorStatus[g.Status]++
		resumo.ValorFaturado = round2(resumo.ValorFaturado + g.ValorFaturado)
		resumo.ValorGlosado = round2(resumo.ValorGlosado + g.ValorGlosado)
		resumo.ValorRecebido = round2(resumo.ValorRecebido + g.ValorRecebido)

		op := resumo.PorOperadora[g.RegistroANS]
		op.RegistroANS = g.RegistroANS
		op.Guias++
		op.ValorFaturado = round2(op.ValorFaturado + g.ValorFaturado)
		op.ValorGlosado = round2(op.ValorGlosado + g.ValorGlosado)
		op.ValorRecebido = round2(op.ValorRecebido + g.ValorRecebido)
		resumo.PorOperadora[g.RegistroANS] = op
	}

	if resumo.ValorFaturado > 0 {
		resumo.TaxaGlosa = round2(resumo.ValorGlosado / resumo.ValorFaturado * 100)
	}

	return resumo
}

// AnalisarGlosas agrega um conjunto de glosas: motivos mais relevantes com
// percentual do valor glosado, subtotais por operadora e taxa de recuperação.
func AnalisarGlosas(glosas []domain.Glosa, inicio, fim time.Time) domain.AnaliseGlosas {
	analise := domain.AnaliseGlosas{
		Inicio:       inicio,
		Fim:          fim,
		PorMotivo:    []domain.MotivoAgregado{},
		PorOperadora: map[string]domain.ResumoOperadora{},
	}

	porMotivo := make(map[string]*domain.MotivoAgregado)
	for _, g := range glosas {
		analise.TotalGlosas++
		analise.ValorGlosado = round2(analise.ValorGlosado + g.ValorGlosado)
		if g.Status == domain.GlosaResolvida {
			analise.ValorRecuperado = round2(analise.ValorRecuperado + g.ValorAprovado)
		}

		op := analise.PorOperadora[g.RegistroANS]
		op.RegistroANS = g.RegistroANS
		op.Guias++
		op.ValorFaturado = round2(op.ValorFaturado + g.ValorOriginal)
		op.ValorGlosado = round2(op.ValorGlosado + g.ValorGlosado)
		op.ValorRecebido = round2(op.ValorRecebido + g.ValorAprovado)
		analise.PorOperadora[g.RegistroANS] = op

		for _, item := range g.Itens {
			codigo := item.CodigoMotivo
			if codigo == "" {
				codigo = glosa.CodigoMotivoOutros
			}
			m, ok := porMotivo[codigo]
			if !ok {
				m = &domain.MotivoAgregado{
					CodigoMotivo:    codigo,
					DescricaoMotivo: glosa.DescricaoMotivo(codigo).Descricao,
				}
				porMotivo[codigo] = m
			}
			m.Quantidade++
			m.Valor = round2(m.Valor + item.ValorGlosado)
		}
	}

	for _, m := range porMotivo {
		if analise.ValorGlosado > 0 {
			m.Percentual = round2(m.Valor / analise.ValorGlosado * 100)
		}
		analise.PorMotivo = append(analise.PorMotivo, *m)
	}
	sort.Slice(analise.PorMotivo, func(i, j int) bool {
		if analise.PorMotivo[i].Valor != analise.PorMotivo[j].Valor {
			return analise.PorMotivo[i].Valor > analise.PorMotivo[j].Valor
		}
		return analise.PorMotivo[i].CodigoMotivo < analise.PorMotivo[j].CodigoMotivo
	})

	if analise.ValorGlosado > 0 {
		analise.TaxaRecuperacao = round2(analise.ValorRecuperado / analise.ValorGlosado * 100)
	}

	return analise
}
