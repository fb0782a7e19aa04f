// internal/core/tuss/service.go
package tuss

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/closestmatch"
	"github.com/vidaclin/faturamento/internal/domain"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Service expõe a consulta à terminologia TUSS. A tabela é imutável após a
// construção; todas as operações são livres de efeitos colaterais.
type Service interface {
	Search(query string, limit int) []domain.TussCode
	GetByCode(codigo string) (domain.TussCode, bool)
	GetByGroup(grupo string) []domain.TussCode
	ListGroups() []string
	IsValid(codigo string) bool
}

type service struct {
	codigos   []domain.TussCode
	porCodigo map[string]domain.TussCode
	porChave  map[string][]domain.TussCode
	grupos    []string
	cm        *closestmatch.ClosestMatch
}

// NewService constrói o serviço sobre a tabela 22 embutida.
func NewService() Service {
	return newServiceComTabela(tabela22)
}

func newServiceComTabela(tabela []domain.TussCode) Service {
	svc := &service{
		codigos:   tabela,
		porCodigo: make(map[string]domain.TussCode),
		porChave:  make(map[string][]domain.TussCode),
	}

	gruposMap := make(map[string]bool)
	var chaves []string
	for _, c := range tabela {
		svc.porCodigo[c.Codigo] = c
		if !gruposMap[c.Grupo] {
			gruposMap[c.Grupo] = true
			svc.grupos = append(svc.grupos, c.Grupo)
		}
		if !c.Ativo {
			continue
		}
		chave := normalizeText(c.Descricao)
		if chave == "" {
			continue
		}
		if len(svc.porChave[chave]) == 0 {
			chaves = append(chaves, chave)
		}
		svc.porChave[chave] = append(svc.porChave[chave], c)
	}
	sort.Strings(svc.grupos)

	if len(chaves) > 0 {
		svc.cm = closestmatch.New(chaves, []int{3, 4})
	}

	return svc
}

var nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
var whitespaceRegex = regexp.MustCompile(`\s+`)

// normalizeText remove acentos e pontuação para busca insensível a grafia.
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, str)
	result = strings.ToUpper(result)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Search retorna os códigos ativos cuja numeração começa com a consulta ou
// cuja descrição/grupo a contém. Consultas com menos de 2 caracteres retornam
// vazio para não varrer a tabela a cada tecla digitada.
func (s *service) Search(query string, limit int) []domain.TussCode {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 2 {
		return []domain.TussCode{}
	}

	chave := normalizeText(q)
	resultados := []domain.TussCode{}
	for _, c := range s.codigos {
		if !c.Ativo {
			continue
		}
		if strings.HasPrefix(c.Codigo, q) ||
			strings.Contains(normalizeText(c.Descricao), chave) ||
			strings.Contains(normalizeText(c.Grupo), chave) {
			resultados = append(resultados, c)
		}
	}

	// Sem correspondência direta, tenta sugestão por proximidade sobre as
	// descrições normalizadas.
	if len(resultados) == 0 && s.cm != nil && chave != "" {
		if match := s.cm.Closest(chave); match != "" {
			resultados = append(resultados, s.porChave[match]...)
		}
	}

	if limit > 0 && len(resultados) > limit {
		resultados = resultados[:limit]
	}
	return resultados
}

// GetByCode retorna o código exato, ativo ou não.
func (s *service) GetByCode(codigo string) (domain.TussCode, bool) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return domain.TussCode{}, false
	}
	c, ok := s.porCodigo[codigo]
	return c, ok
}

// GetByGroup retorna os códigos ativos do grupo, na ordem da tabela.
func (s *service) GetByGroup(grupo string) []domain.TussCode {
	resultados := []domain.TussCode{}
	for _, c := range s.codigos {
		if c.Ativo && c.Grupo == grupo {
			resultados = append(resultados, c)
		}
	}
	return resultados
}

// ListGroups retorna os grupos em ordem alfabética, para exibição estável.
func (s *service) ListGroups() []string {
	grupos := make([]string, len(s.grupos))
	copy(grupos, s.grupos)
	return grupos
}

// IsValid informa se existe um código ativo com esse valor exato.
func (s *service) IsValid(codigo string) bool {
	c, ok := s.porCodigo[strings.TrimSpace(codigo)]
	return ok && c.Ativo
}
