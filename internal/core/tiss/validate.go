// internal/core/tiss/validate.go
package tiss

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vidaclin/faturamento/internal/domain"
)

var registroANSRegex = regexp.MustCompile(`^\d{6}$`)

func vazio(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateGuiaConsulta acumula todas as violações da guia de consulta em
// mensagens legíveis. Lista vazia significa guia válida. A função nunca gera
// pânico: o chamador exibe todos os problemas de uma vez.
func ValidateGuiaConsulta(g domain.GuiaConsulta) []string {
	var erros []string

	if !registroANSRegex.MatchString(g.RegistroANS) {
		erros = append(erros, "registroANS deve conter exatamente 6 dígitos")
	}
	if vazio(g.NumeroGuiaPrestador) {
		erros = append(erros, "numeroGuiaPrestador é obrigatório")
	}
	if vazio(g.NumeroCarteira) {
		erros = append(erros, "numeroCarteira do beneficiário é obrigatório")
	}
	if vazio(g.NomeBeneficiario) {
		erros = append(erros, "nomeBeneficiario é obrigatório")
	}
	if vazio(g.CodigoPrestador) {
		erros = append(erros, "codigoPrestador na operadora é obrigatório")
	}
	if vazio(g.NomeProfissional) {
		erros = append(erros, "nomeProfissional é obrigatório")
	}
	if vazio(g.ConselhoProfissional) {
		erros = append(erros, "conselhoProfissional é obrigatório")
	}
	if vazio(g.NumeroConselho) {
		erros = append(erros, "numeroConselho é obrigatório")
	}
	if vazio(g.UFConselho) {
		erros = append(erros, "ufConselho é obrigatória")
	}
	if vazio(g.TipoConsulta) {
		erros = append(erros, "tipoConsulta é obrigatório")
	}
	if g.DataAtendimento.IsZero() {
		erros = append(erros, "dataAtendimento é obrigatória")
	}
	if vazio(g.CodigoProcedimento) {
		erros = append(erros, "codigoProcedimento é obrigatório")
	}
	if g.ValorProcedimento < 0 {
		erros = append(erros, "valorProcedimento não pode ser negativo")
	}

	return erros
}

// ValidateGuiaSADT acumula todas as violações da guia SP/SADT, incluindo a
// validação individual de cada procedimento realizado.
func ValidateGuiaSADT(g domain.GuiaSADT) []string {
	var erros []string

	if !registroANSRegex.MatchString(g.RegistroANS) {
		erros = append(erros, "registroANS deve conter exatamente 6 dígitos")
	}
	if vazio(g.NumeroGuiaPrestador) {
		erros = append(erros, "numeroGuiaPrestador é obrigatório")
	}
	if vazio(g.NumeroCarteira) {
		erros = append(erros, "numeroCarteira do beneficiário é obrigatório")
	}
	if vazio(g.NomeBeneficiario) {
		erros = append(erros, "nomeBeneficiario é obrigatório")
	}

	if vazio(g.CodigoPrestadorSolicitante) {
		erros = append(erros, "codigoPrestadorSolicitante é obrigatório")
	}
	if vazio(g.NomeProfissionalSolicitante) {
		erros = append(erros, "nomeProfissionalSolicitante é obrigatório")
	}
	if vazio(g.ConselhoProfissionalSolicitante) {
		erros = append(erros, "conselhoProfissionalSolicitante é obrigatório")
	}
	if vazio(g.NumeroConselhoSolicitante) {
		erros = append(erros, "numeroConselhoSolicitante é obrigatório")
	}
	if vazio(g.UFConselhoSolicitante) {
		erros = append(erros, "ufConselhoSolicitante é obrigatória")
	}

	if vazio(g.CodigoPrestadorExecutante) {
		erros = append(erros, "codigoPrestadorExecutante é obrigatório")
	}
	if vazio(g.NomeContratadoExecutante) {
		erros = append(erros, "nomeContratadoExecutante é obrigatório")
	}
	if vazio(g.CNESExecutante) {
		erros = append(erros, "cnesExecutante é obrigatório")
	}
	if vazio(g.NomeProfissionalExecutante) {
		erros = append(erros, "nomeProfissionalExecutante é obrigatório")
	}
	if vazio(g.ConselhoProfissionalExecutante) {
		erros = append(erros, "conselhoProfissionalExecutante é obrigatório")
	}
	if vazio(g.NumeroConselhoExecutante) {
		erros = append(erros, "numeroConselhoExecutante é obrigatório")
	}
	if vazio(g.UFConselhoExecutante) {
		erros = append(erros, "ufConselhoExecutante é obrigatória")
	}

	if vazio(g.CaraterAtendimento) {
		erros = append(erros, "caraterAtendimento é obrigatório")
	}
	if g.DataSolicitacao.IsZero() {
		erros = append(erros, "dataSolicitacao é obrigatória")
	}
	if vazio(g.IndicacaoClinica) {
		erros = append(erros, "indicacaoClinica é obrigatória")
	}

	if len(g.ProcedimentosRealizados) == 0 {
		erros = append(erros, "a guia SP/SADT exige ao menos um procedimento realizado")
	}
	for i, p := range g.ProcedimentosRealizados {
		erros = append(erros, validateProcedimento(i+1, p)...)
	}

	if g.ValorTotalGeral < 0 {
		erros = append(erros, "valorTotalGeral não pode ser negativo")
	}

	return erros
}

func validateProcedimento(seq int, p domain.ProcedimentoRealizado) []string {
	var erros []string
	if p.DataRealizacao.IsZero() {
		erros = append(erros, fmt.Sprintf("procedimento %d: dataRealizacao é obrigatória", seq))
	}
	if vazio(p.CodigoProcedimento) {
		erros = append(erros, fmt.Sprintf("procedimento %d: codigoProcedimento é obrigatório", seq))
	}
	if vazio(p.Descricao) {
		erros = append(erros, fmt.Sprintf("procedimento %d: descricao é obrigatória", seq))
	}
	if p.QuantidadeRealizada <= 0 {
		erros = append(erros, fmt.Sprintf("procedimento %d: quantidadeRealizada deve ser maior que zero", seq))
	}
	if p.ValorUnitario < 0 {
		erros = append(erros, fmt.Sprintf("procedimento %d: valorUnitario não pode ser negativo", seq))
	}
	return erros
}
