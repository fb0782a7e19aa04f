package tuss

import (
	"sort"
	"testing"
)

// TestSearchPisoDeDoisCaracteres garante que consultas curtas nunca varrem a
// tabela, qualquer que seja o conteúdo.
func TestSearchPisoDeDoisCaracteres(t *testing.T) {
	svc := NewService()

	// "é" e "ç" têm mais de um byte mas contam como um único caractere.
	for _, query := range []string{"", "a", " h ", "1", "é", "ç"} {
		resultados := svc.Search(query, 10)
		if len(resultados) != 0 {
			t.Errorf("Search(%q) deveria retornar vazio, retornou %d resultados", query, len(resultados))
		}
	}
}

func TestSearchPorPrefixoDeCodigo(t *testing.T) {
	svc := NewService()

	resultados := svc.Search("10101", 0)
	if len(resultados) == 0 {
		t.Fatal("esperava resultados para o prefixo 10101")
	}
	for _, r := range resultados {
		if r.Codigo[:5] != "10101" {
			t.Errorf("resultado %s não começa com o prefixo buscado", r.Codigo)
		}
	}
}

// TestSearchInsensivelAAcentos verifica a normalização: a busca sem acento
// deve encontrar descrições acentuadas.
func TestSearchInsensivelAAcentos(t *testing.T) {
	svc := NewService()

	resultados := svc.Search("consultorio", 0)
	if len(resultados) == 0 {
		t.Fatal("esperava encontrar 'Consulta em consultório' buscando sem acento")
	}

	resultados = svc.Search("TORAX", 0)
	if len(resultados) == 0 {
		t.Fatal("esperava encontrar 'RX - Tórax' buscando em maiúsculas sem acento")
	}
}

func TestSearchFiltraInativos(t *testing.T) {
	svc := NewService()

	for _, r := range svc.Search("descontinuad", 0) {
		if !r.Ativo {
			t.Errorf("código inativo %s não deveria aparecer na busca", r.Codigo)
		}
	}
}

func TestSearchRespeitaLimite(t *testing.T) {
	svc := NewService()

	resultados := svc.Search("dosagem", 2)
	if len(resultados) > 2 {
		t.Errorf("esperava no máximo 2 resultados, obteve %d", len(resultados))
	}
}

func TestGetByCode(t *testing.T) {
	svc := NewService()

	t.Run("código existente", func(t *testing.T) {
		c, ok := svc.GetByCode("10101012")
		if !ok {
			t.Fatal("esperava encontrar o código 10101012")
		}
		if c.Grupo != GrupoConsultas {
			t.Errorf("grupo inesperado: %s", c.Grupo)
		}
	})

	t.Run("código desconhecido", func(t *testing.T) {
		if _, ok := svc.GetByCode("99999999"); ok {
			t.Error("não deveria encontrar código inexistente")
		}
	})

	t.Run("entrada vazia", func(t *testing.T) {
		if _, ok := svc.GetByCode(""); ok {
			t.Error("entrada vazia não deveria encontrar nada")
		}
	})
}

func TestIsValid(t *testing.T) {
	svc := NewService()

	if !svc.IsValid("40301630") {
		t.Error("40301630 é ativo e deveria ser válido")
	}
	// Código presente na tabela mas inativo.
	if svc.IsValid("10104011") {
		t.Error("10104011 está inativo e não deveria ser válido")
	}
	if svc.IsValid("00000000") {
		t.Error("código inexistente não deveria ser válido")
	}
}

func TestListGroupsOrdenado(t *testing.T) {
	svc := NewService()

	grupos := svc.ListGroups()
	if len(grupos) == 0 {
		t.Fatal("esperava ao menos um grupo")
	}
	if !sort.StringsAreSorted(grupos) {
		t.Errorf("grupos deveriam vir ordenados: %v", grupos)
	}
}

func TestGetByGroup(t *testing.T) {
	svc := NewService()

	codigos := svc.GetByGroup(GrupoTerapias)
	if len(codigos) == 0 {
		t.Fatal("esperava códigos no grupo de terapias")
	}
	for _, c := range codigos {
		if c.Grupo != GrupoTerapias {
			t.Errorf("código %s fora do grupo pedido", c.Codigo)
		}
		if !c.Ativo {
			t.Errorf("código inativo %s não deveria ser listado", c.Codigo)
		}
	}
}
