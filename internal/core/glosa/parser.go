// internal/core/glosa/parser.go
package glosa

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
)

// PrazoRecursoDias é o prazo regulatório para recurso de glosa, contado em
// dias corridos a partir do recebimento da resposta da operadora.
const PrazoRecursoDias = 30

// RespostaOperadora é a forma estruturada de uma resposta de glosa, como
// chega de integrações JSON. Todos os campos opcionais podem faltar.
type RespostaOperadora struct {
	NumeroGuiaPrestador string         `json:"numeroGuiaPrestador"`
	TipoGuia            string         `json:"tipoGuia,omitempty"`
	RegistroANS         string         `json:"registroANS,omitempty"`
	DataRecebimento     string         `json:"dataRecebimento,omitempty"`
	ValorOriginal       float64        `json:"valorOriginal"`
	ValorGlosado        float64        `json:"valorGlosado"`
	Itens               []ItemResposta `json:"itens,omitempty"`
	Observacao          string         `json:"observacao,omitempty"`
}

// ItemResposta é um item glosado na forma estruturada.
type ItemResposta struct {
	CodigoProcedimento string  `json:"codigoProcedimento"`
	Descricao          string  `json:"descricao"`
	Valor              float64 `json:"valor"`
	Motivo             string  `json:"motivo"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseValor aceita tanto ponto quanto vírgula decimal; entrada ilegível vira
// zero, nunca erro.
func parseValor(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var layoutsData = []string{"2006-01-02", "02/01/2006", time.RFC3339}

// parseData tenta os formatos usuais das operadoras; falha vira data zero.
func parseData(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range layoutsData {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// ParseXML normaliza um fragmento XML de resposta de glosa, possivelmente
// parcial ou malformado, na forma canônica. Nunca devolve erro: campo ausente
// degrada para zero ou vazio e a reconciliação segue adiante.
func ParseXML(fragmento string) domain.Glosa {
	g := domain.Glosa{TipoGuia: domain.TipoConsulta}
	if strings.Contains(fragmento, "guiaSP-SADT") {
		g.TipoGuia = domain.TipoSADT
	}

	dec := xml.NewDecoder(strings.NewReader(fragmento))
	dec.Strict = false

	var (
		pilha        []string
		dentroDeItem bool
		item         domain.ItemGlosado
		motivoTopo   string
	)

	atual := func() string {
		if len(pilha) == 0 {
			return ""
		}
		return pilha[len(pilha)-1]
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// EOF ou XML malformado: devolve o resultado parcial.
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			nome := t.Name.Local
			pilha = append(pilha, nome)
			if nome == "itemGlosado" {
				dentroDeItem = true
				item = domain.ItemGlosado{}
			}
		case xml.EndElement:
			if len(pilha) > 0 {
				pilha = pilha[:len(pilha)-1]
			}
			if t.Name.Local == "itemGlosado" && dentroDeItem {
				dentroDeItem = false
				item.SequencialItem = len(g.Itens) + 1
				if item.DescricaoMotivo == "" && item.CodigoMotivo != "" {
					item.DescricaoMotivo = DescricaoMotivo(item.CodigoMotivo).Descricao
				}
				g.Itens = append(g.Itens, item)
			}
		case xml.CharData:
			texto := strings.TrimSpace(string(t))
			if texto == "" {
				continue
			}
			if dentroDeItem {
				preencherItem(&item, atual(), texto)
				continue
			}
			switch atual() {
			case "numeroGuiaPrestador":
				if g.NumeroGuiaPrestador == "" {
					g.NumeroGuiaPrestador = texto
				}
			case "registroANS":
				if g.RegistroANS == "" {
					g.RegistroANS = texto
				}
			case "valorInformado":
				g.ValorOriginal = parseValor(texto)
			case "valorGlosado", "valorGlosa":
				g.ValorGlosado = parseValor(texto)
			case "dataRecebimento", "dataEmissao":
				if g.DataRecebimento.IsZero() {
					g.DataRecebimento = parseData(texto)
				}
			case "codigoGlosa", "motivoGlosa":
				if motivoTopo == "" {
					motivoTopo = texto
				}
			case "observacao", "observacaoGuia":
				if g.Observacao == "" {
					g.Observacao = texto
				}
			}
		}
	}

	normalizar(&g, motivoTopo)
	return g
}

func preencherItem(item *domain.ItemGlosado, campo, texto string) {
	switch campo {
	case "codigoProcedimento":
		item.CodigoProcedimento = texto
	case "descricaoProcedimento", "descricao":
		item.Descricao = texto
	case "valorGlosado", "valorGlosa":
		item.ValorGlosado = parseValor(texto)
	case "codigoGlosa", "motivoGlosa":
		item.CodigoMotivo = texto
	case "descricaoGlosa":
		item.DescricaoMotivo = texto
	}
}

// ParseResposta normaliza uma resposta estruturada (JSON) com o mesmo
// contrato de tolerância do ParseXML.
func ParseResposta(r RespostaOperadora) domain.Glosa {
	g := domain.Glosa{
		NumeroGuiaPrestador: strings.TrimSpace(r.NumeroGuiaPrestador),
		RegistroANS:         strings.TrimSpace(r.RegistroANS),
		TipoGuia:            domain.TipoConsulta,
		DataRecebimento:     parseData(r.DataRecebimento),
		ValorOriginal:       r.ValorOriginal,
		ValorGlosado:        r.ValorGlosado,
		Observacao:          r.Observacao,
	}
	if r.TipoGuia == string(domain.TipoSADT) {
		g.TipoGuia = domain.TipoSADT
	}

	for i, it := range r.Itens {
		motivo := it.Motivo
		if motivo == "" {
			motivo = CodigoMotivoOutros
		}
		g.Itens = append(g.Itens, domain.ItemGlosado{
			SequencialItem:     i + 1,
			CodigoProcedimento: it.CodigoProcedimento,
			Descricao:          it.Descricao,
			ValorGlosado:       it.Valor,
			CodigoMotivo:       motivo,
			DescricaoMotivo:    DescricaoMotivo(motivo).Descricao,
		})
	}

	normalizar(&g, "")
	return g
}

// normalizar fecha as invariantes da glosa: valor aprovado, item sintético de
// fallback, prazo de recurso e status inicial.
func normalizar(g *domain.Glosa, motivoTopo string) {
	g.ValorOriginal = round2(g.ValorOriginal)
	g.ValorGlosado = round2(g.ValorGlosado)
	g.ValorAprovado = round2(g.ValorOriginal - g.ValorGlosado)

	// Sem itens explícitos mas com valor glosado: sintetiza um único item
	// genérico para que a lista nunca contradiga o total glosado.
	if len(g.Itens) == 0 && g.ValorGlosado != 0 {
		motivo := motivoTopo
		if motivo == "" {
			motivo = CodigoMotivoOutros
		}
		g.Itens = append(g.Itens, domain.ItemGlosado{
			SequencialItem:  1,
			Descricao:       "Glosa total da guia",
			ValorGlosado:    g.ValorGlosado,
			CodigoMotivo:    motivo,
			DescricaoMotivo: DescricaoMotivo(motivo).Descricao,
		})
	}
	if g.Itens == nil {
		g.Itens = []domain.ItemGlosado{}
	}

	if !g.DataRecebimento.IsZero() {
		g.PrazoRecurso = g.DataRecebimento.AddDate(0, 0, PrazoRecursoDias)
	}
	g.Status = domain.GlosaPendente
}
