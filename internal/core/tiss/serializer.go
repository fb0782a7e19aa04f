// internal/core/tiss/serializer.go
package tiss

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
)

// VersaoPadrao é a versão do padrão TISS emitida no cabeçalho de toda mensagem.
const VersaoPadrao = "4.02.00"

const nsANS = "http://www.ans.gov.br/padroes/tiss/schemas"

// Opcoes controla a forma do documento gerado. O valor zero corresponde ao
// comportamento padrão com a declaração XML no topo.
type Opcoes struct {
	// SemDeclaracao suprime a linha <?xml ...?>: usado ao embutir a guia em
	// um documento de lote maior.
	SemDeclaracao bool
}

// EscapeXML aplica a substituição de entidades antes da inserção no documento.
// Nunca confiamos na camada de XML para escapar implicitamente.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// PadProcedimento completa o código de procedimento com zeros à esquerda até
// 10 dígitos. Contrato fixo do padrão, independente da largura de entrada.
func PadProcedimento(codigo string) string {
	codigo = strings.TrimSpace(codigo)
	if len(codigo) >= 10 {
		return codigo
	}
	return strings.Repeat("0", 10-len(codigo)) + codigo
}

// FormatValor renderiza valores monetários sempre com duas casas e ponto
// decimal, independente de locale.
func FormatValor(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatData(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatQuantidade(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func escreve(b *strings.Builder, indent, nome, valor string) {
	b.WriteString(indent)
	b.WriteString("<ans:")
	b.WriteString(nome)
	b.WriteString(">")
	b.WriteString(valor)
	b.WriteString("</ans:")
	b.WriteString(nome)
	b.WriteString(">\n")
}

func abre(b *strings.Builder, indent, nome string) {
	b.WriteString(indent)
	b.WriteString("<ans:")
	b.WriteString(nome)
	b.WriteString(">\n")
}

func fecha(b *strings.Builder, indent, nome string) {
	b.WriteString(indent)
	b.WriteString("</ans:")
	b.WriteString(nome)
	b.WriteString(">\n")
}

// hashEpilogo calcula o digesto do corpo serializado, em hexadecimal
// maiúsculo. Serve para a operadora detectar corrupção de transmissão, não
// como mecanismo de segurança. Isolado aqui para permitir a troca do
// algoritmo numa implantação certificada.
func hashEpilogo(corpo string) string {
	sum := sha1.Sum([]byte(corpo))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// GerarXMLConsulta monta a mensagem TISS completa para uma guia de consulta.
// Pressupõe guia previamente validada por ValidateGuiaConsulta; entrada
// inválida produz XML malformado sem pânico.
func GerarXMLConsulta(g domain.GuiaConsulta, opts Opcoes) string {
	return montarMensagem(GerarElementoGuiaConsulta(g, "  "), opts)
}

// GerarXMLSADT monta a mensagem TISS completa para uma guia SP/SADT.
func GerarXMLSADT(g domain.GuiaSADT, opts Opcoes) string {
	return montarMensagem(GerarElementoGuiaSADT(g, "  "), opts)
}

func montarMensagem(elementoGuia string, opts Opcoes) string {
	var corpo strings.Builder
	abre(&corpo, "  ", "cabecalho")
	escreve(&corpo, "    ", "versaoPadrao", VersaoPadrao)
	fecha(&corpo, "  ", "cabecalho")
	corpo.WriteString(elementoGuia)

	var b strings.Builder
	if !opts.SemDeclaracao {
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	b.WriteString(`<ans:mensagemTISS xmlns:ans="` + nsANS + `">` + "\n")
	b.WriteString(corpo.String())
	abre(&b, "  ", "epilogo")
	escreve(&b, "    ", "hash", hashEpilogo(corpo.String()))
	fecha(&b, "  ", "epilogo")
	b.WriteString("</ans:mensagemTISS>\n")
	return b.String()
}

// GerarElementoGuiaConsulta emite apenas o elemento <ans:guiaConsulta>, sem
// envelope nem epílogo, para composição de lotes com várias guias. O indent é
// um prefixo literal aplicado às tags de abertura e fechamento.
func GerarElementoGuiaConsulta(g domain.GuiaConsulta, indent string) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("<ans:guiaConsulta>\n")
	in := indent + "  "

	abre(&b, in, "cabecalhoGuia")
	escreve(&b, in+"  ", "registroANS", g.RegistroANS)
	escreve(&b, in+"  ", "numeroGuiaPrestador", EscapeXML(g.NumeroGuiaPrestador))
	fecha(&b, in, "cabecalhoGuia")

	abre(&b, in, "dadosBeneficiario")
	escreve(&b, in+"  ", "numeroCarteira", EscapeXML(g.NumeroCarteira))
	if g.ValidadeCarteira != "" {
		escreve(&b, in+"  ", "validadeCarteira", g.ValidadeCarteira)
	}
	escreve(&b, in+"  ", "nomeBeneficiario", EscapeXML(g.NomeBeneficiario))
	fecha(&b, in, "dadosBeneficiario")

	abre(&b, in, "contratadoExecutante")
	escreve(&b, in+"  ", "codigoPrestadorNaOperadora", EscapeXML(g.CodigoPrestador))
	escreve(&b, in+"  ", "nomeContratado", EscapeXML(g.NomeContratado))
	escreve(&b, in+"  ", "CNES", EscapeXML(g.CNES))
	fecha(&b, in, "contratadoExecutante")

	abre(&b, in, "profissionalExecutante")
	escreve(&b, in+"  ", "nomeProfissional", EscapeXML(g.NomeProfissional))
	escreve(&b, in+"  ", "conselhoProfissional", EscapeXML(g.ConselhoProfissional))
	escreve(&b, in+"  ", "numeroConselhoProfissional", EscapeXML(g.NumeroConselho))
	escreve(&b, in+"  ", "UF", EscapeXML(g.UFConselho))
	if g.CBOS != "" {
		escreve(&b, in+"  ", "CBOS", EscapeXML(g.CBOS))
	}
	fecha(&b, in, "profissionalExecutante")

	abre(&b, in, "dadosAtendimento")
	if g.IndicacaoAcidente != "" {
		escreve(&b, in+"  ", "indicacaoAcidente", EscapeXML(g.IndicacaoAcidente))
	}
	escreve(&b, in+"  ", "dataAtendimento", formatData(g.DataAtendimento))
	escreve(&b, in+"  ", "tipoConsulta", EscapeXML(g.TipoConsulta))
	abre(&b, in+"  ", "procedimento")
	escreve(&b, in+"    ", "codigoTabela", codigoTabelaOuPadrao(g.CodigoTabela))
	escreve(&b, in+"    ", "codigoProcedimento", PadProcedimento(g.CodigoProcedimento))
	escreve(&b, in+"    ", "valorProcedimento", FormatValor(g.ValorProcedimento))
	fecha(&b, in+"  ", "procedimento")
	fecha(&b, in, "dadosAtendimento")

	if g.IndicacaoClinica != "" {
		escreve(&b, in, "indicacaoClinica", EscapeXML(g.IndicacaoClinica))
	}
	if g.Observacao != "" {
		escreve(&b, in, "observacao", EscapeXML(g.Observacao))
	}

	b.WriteString(indent)
	b.WriteString("</ans:guiaConsulta>\n")
	return b.String()
}

// GerarElementoGuiaSADT emite apenas o elemento <ans:guiaSP-SADT>. A ordem
// das linhas de procedimento segue exatamente a ordem de entrada: a operadora
// numera os itens glosados por posição.
func GerarElementoGuiaSADT(g domain.GuiaSADT, indent string) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("<ans:guiaSP-SADT>\n")
	in := indent + "  "

	abre(&b, in, "cabecalhoGuia")
	escreve(&b, in+"  ", "registroANS", g.RegistroANS)
	escreve(&b, in+"  ", "numeroGuiaPrestador", EscapeXML(g.NumeroGuiaPrestador))
	if g.NumeroGuiaPrincipal != "" {
		escreve(&b, in+"  ", "numeroGuiaPrincipal", EscapeXML(g.NumeroGuiaPrincipal))
	}
	fecha(&b, in, "cabecalhoGuia")

	abre(&b, in, "dadosBeneficiario")
	escreve(&b, in+"  ", "numeroCarteira", EscapeXML(g.NumeroCarteira))
	if g.ValidadeCarteira != "" {
		escreve(&b, in+"  ", "validadeCarteira", g.ValidadeCarteira)
	}
	escreve(&b, in+"  ", "nomeBeneficiario", EscapeXML(g.NomeBeneficiario))
	fecha(&b, in, "dadosBeneficiario")

	abre(&b, in, "dadosSolicitante")
	abre(&b, in+"  ", "contratadoSolicitante")
	escreve(&b, in+"    ", "codigoPrestadorNaOperadora", EscapeXML(g.CodigoPrestadorSolicitante))
	escreve(&b, in+"    ", "nomeContratado", EscapeXML(g.NomeContratadoSolicitante))
	fecha(&b, in+"  ", "contratadoSolicitante")
	abre(&b, in+"  ", "profissionalSolicitante")
	escreve(&b, in+"    ", "nomeProfissional", EscapeXML(g.NomeProfissionalSolicitante))
	escreve(&b, in+"    ", "conselhoProfissional", EscapeXML(g.ConselhoProfissionalSolicitante))
	escreve(&b, in+"    ", "numeroConselhoProfissional", EscapeXML(g.NumeroConselhoSolicitante))
	escreve(&b, in+"    ", "UF", EscapeXML(g.UFConselhoSolicitante))
	if g.CBOSSolicitante != "" {
		escreve(&b, in+"    ", "CBOS", EscapeXML(g.CBOSSolicitante))
	}
	fecha(&b, in+"  ", "profissionalSolicitante")
	fecha(&b, in, "dadosSolicitante")

	abre(&b, in, "dadosSolicitacao")
	escreve(&b, in+"  ", "dataSolicitacao", formatData(g.DataSolicitacao))
	escreve(&b, in+"  ", "caraterAtendimento", EscapeXML(g.CaraterAtendimento))
	escreve(&b, in+"  ", "indicacaoClinica", EscapeXML(g.IndicacaoClinica))
	fecha(&b, in, "dadosSolicitacao")

	abre(&b, in, "dadosExecutante")
	abre(&b, in+"  ", "contratadoExecutante")
	escreve(&b, in+"    ", "codigoPrestadorNaOperadora", EscapeXML(g.CodigoPrestadorExecutante))
	escreve(&b, in+"    ", "nomeContratado", EscapeXML(g.NomeContratadoExecutante))
	escreve(&b, in+"    ", "CNES", EscapeXML(g.CNESExecutante))
	fecha(&b, in+"  ", "contratadoExecutante")
	abre(&b, in+"  ", "profissionalExecutante")
	escreve(&b, in+"    ", "nomeProfissional", EscapeXML(g.NomeProfissionalExecutante))
	escreve(&b, in+"    ", "conselhoProfissional", EscapeXML(g.ConselhoProfissionalExecutante))
	escreve(&b, in+"    ", "numeroConselhoProfissional", EscapeXML(g.NumeroConselhoExecutante))
	escreve(&b, in+"    ", "UF", EscapeXML(g.UFConselhoExecutante))
	if g.CBOSExecutante != "" {
		escreve(&b, in+"    ", "CBOS", EscapeXML(g.CBOSExecutante))
	}
	fecha(&b, in+"  ", "profissionalExecutante")
	fecha(&b, in, "dadosExecutante")

	abre(&b, in, "procedimentosExecutados")
	for _, p := range g.ProcedimentosRealizados {
		abre(&b, in+"  ", "procedimentoExecutado")
		escreve(&b, in+"    ", "dataExecucao", formatData(p.DataRealizacao))
		if p.HoraInicial != "" {
			escreve(&b, in+"    ", "horaInicial", p.HoraInicial)
		}
		if p.HoraFinal != "" {
			escreve(&b, in+"    ", "horaFinal", p.HoraFinal)
		}
		abre(&b, in+"    ", "procedimento")
		escreve(&b, in+"      ", "codigoTabela", codigoTabelaOuPadrao(p.CodigoTabela))
		escreve(&b, in+"      ", "codigoProcedimento", PadProcedimento(p.CodigoProcedimento))
		escreve(&b, in+"      ", "descricaoProcedimento", EscapeXML(p.Descricao))
		fecha(&b, in+"    ", "procedimento")
		escreve(&b, in+"    ", "quantidadeExecutada", formatQuantidade(p.QuantidadeRealizada))
		if p.ViaAcesso != "" {
			escreve(&b, in+"    ", "viaAcesso", EscapeXML(p.ViaAcesso))
		}
		if p.Tecnica != "" {
			escreve(&b, in+"    ", "tecnicaUtilizada", EscapeXML(p.Tecnica))
		}
		escreve(&b, in+"    ", "valorUnitario", FormatValor(p.ValorUnitario))
		escreve(&b, in+"    ", "valorTotal", FormatValor(p.ValorTotal))
		fecha(&b, in+"  ", "procedimentoExecutado")
	}
	fecha(&b, in, "procedimentosExecutados")

	abre(&b, in, "valorTotal")
	escreve(&b, in+"  ", "valorProcedimentos", FormatValor(g.ValorTotalProcedimentos))
	if g.ValorTaxasAlugueis != nil {
		escreve(&b, in+"  ", "valorTaxasAlugueis", FormatValor(*g.ValorTaxasAlugueis))
	}
	if g.ValorMateriais != nil {
		escreve(&b, in+"  ", "valorMateriais", FormatValor(*g.ValorMateriais))
	}
	if g.ValorMedicamentos != nil {
		escreve(&b, in+"  ", "valorMedicamentos", FormatValor(*g.ValorMedicamentos))
	}
	if g.ValorOPME != nil {
		escreve(&b, in+"  ", "valorOPME", FormatValor(*g.ValorOPME))
	}
	escreve(&b, in+"  ", "valorTotalGeral", FormatValor(g.ValorTotalGeral))
	fecha(&b, in, "valorTotal")

	if g.Observacao != "" {
		escreve(&b, in, "observacao", EscapeXML(g.Observacao))
	}

	b.WriteString(indent)
	b.WriteString("</ans:guiaSP-SADT>\n")
	return b.String()
}

// codigoTabelaOuPadrao devolve "22" (tabela TUSS) quando o campo vier vazio.
func codigoTabelaOuPadrao(codigo string) string {
	if strings.TrimSpace(codigo) == "" {
		return "22"
	}
	return codigo
}
