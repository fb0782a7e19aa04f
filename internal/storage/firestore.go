// internal/storage/firestore.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/vidaclin/faturamento/internal/domain"
	"google.golang.org/api/iterator"
)

// ErrNaoEncontrado indica que o documento não existe na clínica informada.
var ErrNaoEncontrado = errors.New("registro não encontrado")

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore cria o Store sobre o Firestore, com as guias e glosas em
// subcoleções por clínica.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) guias(clinicaID string) *firestore.CollectionRef {
	return s.client.Collection("clinicas").Doc(clinicaID).Collection("guias")
}

func (s *firestoreStore) glosas(clinicaID string) *firestore.CollectionRef {
	return s.client.Collection("clinicas").Doc(clinicaID).Collection("glosas")
}

func (s *firestoreStore) CriarGuia(ctx context.Context, guia domain.Guia) (domain.Guia, error) {
	if guia.ID == "" {
		guia.ID = uuid.NewString()
	}
	if _, err := s.guias(guia.ClinicaID).Doc(guia.ID).Set(ctx, guia); err != nil {
		return domain.Guia{}, fmt.Errorf("falha ao gravar guia: %w", err)
	}
	return guia, nil
}

func (s *firestoreStore) ObterGuia(ctx context.Context, clinicaID, guiaID string) (domain.Guia, error) {
	doc, err := s.guias(clinicaID).Doc(guiaID).Get(ctx)
	if err != nil {
		return domain.Guia{}, ErrNaoEncontrado
	}
	var guia domain.Guia
	if err := doc.DataTo(&guia); err != nil {
		return domain.Guia{}, fmt.Errorf("falha ao ler guia: %w", err)
	}
	return guia, nil
}

func (s *firestoreStore) AtualizarGuia(ctx context.Context, guia domain.Guia) error {
	if guia.ID == "" {
		return ErrNaoEncontrado
	}
	if _, err := s.guias(guia.ClinicaID).Doc(guia.ID).Set(ctx, guia); err != nil {
		return fmt.Errorf("falha ao atualizar guia: %w", err)
	}
	return nil
}

func (s *firestoreStore) GuiasPorPeriodo(ctx context.Context, clinicaID string, inicio, fim time.Time) ([]domain.Guia, error) {
	query := s.guias(clinicaID).
		Where("dataEmissao", ">=", inicio).
		Where("dataEmissao", "<=", fim).
		Documents(ctx)
	defer query.Stop()

	var guias []domain.Guia
	for {
		doc, err := query.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("falha ao consultar guias: %w", err)
		}
		var guia domain.Guia
		if err := doc.DataTo(&guia); err != nil {
			return nil, fmt.Errorf("falha ao ler guia: %w", err)
		}
		guias = append(guias, guia)
	}
	return guias, nil
}

func (s *firestoreStore) CriarGlosa(ctx context.Context, glosa domain.Glosa) (domain.Glosa, error) {
	if glosa.ID == "" {
		glosa.ID = uuid.NewString()
	}
	if _, err := s.glosas(glosa.ClinicaID).Doc(glosa.ID).Set(ctx, glosa); err != nil {
		return domain.Glosa{}, fmt.Errorf("falha ao gravar glosa: %w", err)
	}
	return glosa, nil
}

func (s *firestoreStore) ObterGlosa(ctx context.Context, clinicaID, glosaID string) (domain.Glosa, error) {
	doc, err := s.glosas(clinicaID).Doc(glosaID).Get(ctx)
	if err != nil {
		return domain.Glosa{}, ErrNaoEncontrado
	}
	var glosa domain.Glosa
	if err := doc.DataTo(&glosa); err != nil {
		return domain.Glosa{}, fmt.Errorf("falha ao ler glosa: %w", err)
	}
	return glosa, nil
}

func (s *firestoreStore) AtualizarGlosa(ctx context.Context, glosa domain.Glosa) error {
	if glosa.ID == "" {
		return ErrNaoEncontrado
	}
	if _, err := s.glosas(glosa.ClinicaID).Doc(glosa.ID).Set(ctx, glosa); err != nil {
		return fmt.Errorf("falha ao atualizar glosa: %w", err)
	}
	return nil
}

func (s *firestoreStore) GlosasPorPeriodo(ctx context.Context, clinicaID string, inicio, fim time.Time) ([]domain.Glosa, error) {
	query := s.glosas(clinicaID).
		Where("dataRecebimento", ">=", inicio).
		Where("dataRecebimento", "<=", fim).
		Documents(ctx)
	defer query.Stop()

	var glosas []domain.Glosa
	for {
		doc, err := query.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("falha ao consultar glosas: %w", err)
		}
		var glosa domain.Glosa
		if err := doc.DataTo(&glosa); err != nil {
			return nil, fmt.Errorf("falha ao ler glosa: %w", err)
		}
		glosas = append(glosas, glosa)
	}
	return glosas, nil
}
