// internal/core/glosa/stats.go
package glosa

import (
	"sort"
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
)

// MotivoFrequente é um agrupamento de itens glosados por código de motivo.
type MotivoFrequente struct {
	CodigoMotivo    string  `json:"codigoMotivo"`
	DescricaoMotivo string  `json:"descricaoMotivo"`
	Quantidade      int     `json:"quantidade"`
	Valor           float64 `json:"valor"`
}

// Estatisticas resume um conjunto de glosas para o painel de recuperação.
type Estatisticas struct {
	TotalGlosas     int               `json:"totalGlosas"`
	ValorGlosado    float64           `json:"valorGlosado"`
	ValorRecuperado float64           `json:"valorRecuperado"`
	PorMotivo       []MotivoFrequente `json:"porMotivo"`
}

// CalcularEstatisticas agrega as glosas: total, valor glosado, valor
// recuperado (aprovado nas resolvidas) e os motivos mais frequentes somados
// sobre todos os itens.
func CalcularEstatisticas(glosas []domain.Glosa) Estatisticas {
	stats := Estatisticas{TotalGlosas: len(glosas), PorMotivo: []MotivoFrequente{}}
	porMotivo := make(map[string]*MotivoFrequente)

	for _, g := range glosas {
		stats.ValorGlosado = round2(stats.ValorGlosado + g.ValorGlosado)
		if g.Status == domain.GlosaResolvida {
			stats.ValorRecuperado = round2(stats.ValorRecuperado + g.ValorAprovado)
		}
		for _, item := range g.Itens {
			codigo := item.CodigoMotivo
			if codigo == "" {
				codigo = CodigoMotivoOutros
			}
			m, ok := porMotivo[codigo]
			if !ok {
				m = &MotivoFrequente{
					CodigoMotivo:    codigo,
					DescricaoMotivo: DescricaoMotivo(codigo).Descricao,
				}
				porMotivo[codigo] = m
			}
			m.Quantidade++
			m.Valor = round2(m.Valor + item.ValorGlosado)
		}
	}

	for _, m := range porMotivo {
		stats.PorMotivo = append(stats.PorMotivo, *m)
	}
	sort.Slice(stats.PorMotivo, func(i, j int) bool {
		if stats.PorMotivo[i].Valor != stats.PorMotivo[j].Valor {
			return stats.PorMotivo[i].Valor > stats.PorMotivo[j].Valor
		}
		return stats.PorMotivo[i].CodigoMotivo < stats.PorMotivo[j].CodigoMotivo
	})

	return stats
}

func somenteData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DiasParaPrazoRecurso conta os dias corridos entre a referência e o prazo de
// recurso. Valores negativos significam prazo vencido; não há saturação.
func DiasParaPrazoRecurso(g domain.Glosa, referencia time.Time) int {
	return int(somenteData(g.PrazoRecurso).Sub(somenteData(referencia)).Hours() / 24)
}

// DentroDoPrazoRecurso informa se a glosa ainda pode ser recorrida na data de
// referência.
func DentroDoPrazoRecurso(g domain.Glosa, referencia time.Time) bool {
	return DiasParaPrazoRecurso(g, referencia) >= 0
}

// DiasParaPrazoRecursoHoje é a conveniência sobre a data corrente.
func DiasParaPrazoRecursoHoje(g domain.Glosa) int {
	return DiasParaPrazoRecurso(g, time.Now())
}

// DentroDoPrazoRecursoHoje é a conveniência sobre a data corrente.
func DentroDoPrazoRecursoHoje(g domain.Glosa) bool {
	return DentroDoPrazoRecurso(g, time.Now())
}
