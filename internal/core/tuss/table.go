// internal/core/tuss/table.go
package tuss

import (
	"time"

	"github.com/vidaclin/faturamento/internal/domain"
)

// Grupos da tabela 22 usados pela clínica. A tabela é carregada uma única vez
// na criação do serviço e nunca é alterada em tempo de execução.
const (
	GrupoConsultas     = "Consultas"
	GrupoLaboratorio   = "Exames Laboratoriais"
	GrupoImagem        = "Diagnóstico por Imagem"
	GrupoProcedimentos = "Procedimentos Clínicos"
	GrupoTerapias      = "Terapias"
)

var vigenciaPadrao = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func fimVigencia(ano, mes, dia int) *time.Time {
	t := time.Date(ano, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
	return &t
}

// tabela22 é o recorte estático da terminologia TUSS mantido pela aplicação.
var tabela22 = []domain.TussCode{
	{Codigo: "10101012", Descricao: "Consulta em consultório (no horário normal ou preestabelecido)", Grupo: GrupoConsultas, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "10101039", Descricao: "Consulta em domicílio", Grupo: GrupoConsultas, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "10102019", Descricao: "Consulta em pronto socorro", Grupo: GrupoConsultas, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "10106022", Descricao: "Teleconsulta médica", Grupo: GrupoConsultas, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "10104011", Descricao: "Consulta de retorno", Grupo: GrupoConsultas, Ativo: false, VigenciaInicio: vigenciaPadrao, VigenciaFim: fimVigencia(2023, 12, 31)},

	{Codigo: "40301630", Descricao: "Hemograma com contagem de plaquetas ou frações", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40302040", Descricao: "Ácido úrico - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40302504", Descricao: "Creatinina - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40302733", Descricao: "Glicose - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40301361", Descricao: "Colesterol total - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40301397", Descricao: "Colesterol HDL - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40302458", Descricao: "Triglicerídeos - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40316530", Descricao: "TSH - hormônio tireoestimulante - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40316785", Descricao: "T4 livre - pesquisa e/ou dosagem", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40311210", Descricao: "Urina tipo I (rotina)", Grupo: GrupoLaboratorio, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40302016", Descricao: "Dosagem sérica descontinuada", Grupo: GrupoLaboratorio, Ativo: false, VigenciaInicio: vigenciaPadrao, VigenciaFim: fimVigencia(2022, 6, 30)},

	{Codigo: "40808012", Descricao: "RX - Tórax - 2 incidências", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40808085", Descricao: "RX - Coluna lombo-sacra", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40901113", Descricao: "US - Abdome total", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40901220", Descricao: "US - Obstétrica", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40901750", Descricao: "US - Tireoide", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "41001010", Descricao: "TC - Crânio ou sela túrcica ou órbitas", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "41101014", Descricao: "RM - Crânio (encéfalo)", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40601110", Descricao: "Mamografia convencional bilateral", Grupo: GrupoImagem, Ativo: true, VigenciaInicio: vigenciaPadrao},

	{Codigo: "20101295", Descricao: "Curativo de extensão média com ou sem desbridamento", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "20103301", Descricao: "Eletrocardiograma convencional de até 12 derivações", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "20104049", Descricao: "Teste ergométrico computadorizado", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "20203055", Descricao: "Infiltração de substância em cavidade sinovial", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "31602096", Descricao: "Retirada de corpo estranho subcutâneo", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40202496", Descricao: "Holter de 24 horas - 3 canais", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "40103587", Descricao: "Monitorização ambulatorial da pressão arterial - MAPA", Grupo: GrupoProcedimentos, Ativo: true, VigenciaInicio: vigenciaPadrao},

	{Codigo: "50000462", Descricao: "Sessão de psicoterapia individual", Grupo: GrupoTerapias, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "50000470", Descricao: "Sessão de fisioterapia", Grupo: GrupoTerapias, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "50000560", Descricao: "Sessão de fonoaudiologia", Grupo: GrupoTerapias, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "50000594", Descricao: "Sessão de terapia ocupacional", Grupo: GrupoTerapias, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "50001213", Descricao: "Sessão de acupuntura", Grupo: GrupoTerapias, Ativo: true, VigenciaInicio: vigenciaPadrao},
	{Codigo: "50000403", Descricao: "Atendimento nutricional descontinuado", Grupo: GrupoTerapias, Ativo: false, VigenciaInicio: vigenciaPadrao, VigenciaFim: fimVigencia(2024, 3, 31)},
}
