// internal/core/relatorios/service.go
package relatorios

import (
	"context"
	"fmt"
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
	"github.com/vidaclin/faturamento/internal/storage"
)

// Service produz os relatórios de faturamento de uma clínica. Sempre
// recalculado por chamada; o desempenho das consultas pertence à camada de
// persistência.
type Service interface {
	ResumoFaturamento(ctx context.Context, clinicaID string, inicio, fim time.Time) (domain.ResumoFaturamento, error)
	AnaliseGlosas(ctx context.Context, clinicaID string, inicio, fim time.Time) (domain.AnaliseGlosas, error)
}

type service struct {
	store storage.Store
}

// NewService cria o serviço de relatórios sobre o Store.
func NewService(store storage.Store) Service {
	return &service{store: store}
}

func (s *service) ResumoFaturamento(ctx context.Context, clinicaID string, inicio, fim time.Time) (domain.ResumoFaturamento, error) {
	guias, err := s.store.GuiasPorPeriodo(ctx, clinicaID, inicio, fim)
	if err != nil {
		return domain.ResumoFaturamento{}, fmt.Errorf("falha ao carregar guias do período: %w", err)
	}
	return CalcularResumo(guias, inicio, fim), nil
}

func (s *service) AnaliseGlosas(ctx context.Context, clinicaID string, inicio, fim time.Time) (domain.AnaliseGlosas, error) {
	glosas, err := s.store.GlosasPorPeriodo(ctx, clinicaID, inicio, fim)
	if err != nil {
		return domain.AnaliseGlosas{}, fmt.Errorf("falha ao carregar glosas do período: %w", err)
	}
	return AnalisarGlosas(glosas, inicio, fim), nil
}
