// internal/storage/store.go
package storage

import (
	"context"
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
)

// Store é o contrato de persistência de guias e glosas, chaveado por
// (clinicaID, id). A camada núcleo nunca enumera o armazenamento fora destas
// operações.
type Store interface {
	CriarGuia(ctx context.Context, guia domain.Guia) (domain.Guia, error)
	ObterGuia(ctx context.Context, clinicaID, guiaID string) (domain.Guia, error)
	AtualizarGuia(ctx context.Context, guia domain.Guia) error
	GuiasPorPeriodo(ctx context.Context, clinicaID string, inicio, fim time.Time) ([]domain.Guia, error)

	CriarGlosa(ctx context.Context, glosa domain.Glosa) (domain.Glosa, error)
	ObterGlosa(ctx context.Context, clinicaID, glosaID string) (domain.Glosa, error)
	AtualizarGlosa(ctx context.Context, glosa domain.Glosa) error
	GlosasPorPeriodo(ctx context.Context, clinicaID string, inicio, fim time.Time) ([]domain.Glosa, error)
}
