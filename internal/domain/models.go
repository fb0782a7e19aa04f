// internal/domain/models.go
package domain

import "time"

// TipoGuia identifica o formato da guia TISS.
type TipoGuia string

const (
	TipoConsulta TipoGuia = "consulta"
	TipoSADT     TipoGuia = "sadt"
)

// StatusGuia define o ciclo de vida de uma guia dentro da clínica.
// Os relatórios materializam todos os valores, mesmo com contagem zero.
type StatusGuia string

const (
	StatusRascunho  StatusGuia = "rascunho"
	StatusEnviada   StatusGuia = "enviada"
	StatusPaga      StatusGuia = "paga"
	StatusGlosada   StatusGuia = "glosada"
	StatusCancelada StatusGuia = "cancelada"
)

// StatusGlosa define o ciclo de vida de uma glosa recebida da operadora.
type StatusGlosa string

const (
	GlosaPendente   StatusGlosa = "pendente"
	GlosaEmRecurso  StatusGlosa = "em_recurso"
	GlosaResolvida  StatusGlosa = "resolvida"
	GlosaIndeferida StatusGlosa = "indeferida"
)

// TussCode é uma entrada imutável da tabela TUSS (tabela 22 da ANS).
type TussCode struct {
	Codigo         string     `json:"codigo" firestore:"codigo"`
	Descricao      string     `json:"descricao" firestore:"descricao"`
	Grupo          string     `json:"grupo" firestore:"grupo"`
	Ativo          bool       `json:"ativo" firestore:"ativo"`
	VigenciaInicio time.Time  `json:"vigenciaInicio" firestore:"vigenciaInicio"`
	VigenciaFim    *time.Time `json:"vigenciaFim,omitempty" firestore:"vigenciaFim,omitempty"`
}

// GuiaConsulta carrega os campos da guia de consulta TISS 4.02.00.
type GuiaConsulta struct {
	RegistroANS          string    `json:"registroANS" firestore:"registroANS"`
	NumeroGuiaPrestador  string    `json:"numeroGuiaPrestador" firestore:"numeroGuiaPrestador"`
	NumeroCarteira       string    `json:"numeroCarteira" firestore:"numeroCarteira"`
	NomeBeneficiario     string    `json:"nomeBeneficiario" firestore:"nomeBeneficiario"`
	ValidadeCarteira     string    `json:"validadeCarteira,omitempty" firestore:"validadeCarteira,omitempty"`
	CodigoPrestador      string    `json:"codigoPrestador" firestore:"codigoPrestador"`
	NomeContratado       string    `json:"nomeContratado" firestore:"nomeContratado"`
	CNES                 string    `json:"cnes" firestore:"cnes"`
	NomeProfissional     string    `json:"nomeProfissional" firestore:"nomeProfissional"`
	ConselhoProfissional string    `json:"conselhoProfissional" firestore:"conselhoProfissional"`
	NumeroConselho       string    `json:"numeroConselho" firestore:"numeroConselho"`
	UFConselho           string    `json:"ufConselho" firestore:"ufConselho"`
	CBOS                 string    `json:"cbos,omitempty" firestore:"cbos,omitempty"`
	IndicacaoAcidente    string    `json:"indicacaoAcidente,omitempty" firestore:"indicacaoAcidente,omitempty"`
	TipoConsulta         string    `json:"tipoConsulta" firestore:"tipoConsulta"`
	DataAtendimento      time.Time `json:"dataAtendimento" firestore:"dataAtendimento"`
	CodigoTabela         string    `json:"codigoTabela" firestore:"codigoTabela"`
	CodigoProcedimento   string    `json:"codigoProcedimento" firestore:"codigoProcedimento"`
	ValorProcedimento    float64   `json:"valorProcedimento" firestore:"valorProcedimento"`
	IndicacaoClinica     string    `json:"indicacaoClinica,omitempty" firestore:"indicacaoClinica,omitempty"`
	Observacao           string    `json:"observacao,omitempty" firestore:"observacao,omitempty"`
}

// ProcedimentoRealizado é uma linha de procedimento executado na guia SP/SADT.
// A ordem das linhas é significativa: a operadora referencia cada linha pelo
// sequencial na resposta de glosa.
type ProcedimentoRealizado struct {
	DataRealizacao      time.Time `json:"dataRealizacao" firestore:"dataRealizacao"`
	HoraInicial         string    `json:"horaInicial,omitempty" firestore:"horaInicial,omitempty"`
	HoraFinal           string    `json:"horaFinal,omitempty" firestore:"horaFinal,omitempty"`
	CodigoTabela        string    `json:"codigoTabela" firestore:"codigoTabela"`
	CodigoProcedimento  string    `json:"codigoProcedimento" firestore:"codigoProcedimento"`
	Descricao           string    `json:"descricao" firestore:"descricao"`
	QuantidadeRealizada float64   `json:"quantidadeRealizada" firestore:"quantidadeRealizada"`
	ViaAcesso           string    `json:"viaAcesso,omitempty" firestore:"viaAcesso,omitempty"`
	Tecnica             string    `json:"tecnica,omitempty" firestore:"tecnica,omitempty"`
	ValorUnitario       float64   `json:"valorUnitario" firestore:"valorUnitario"`
	ValorTotal          float64   `json:"valorTotal" firestore:"valorTotal"`
}

// GuiaSADT carrega os campos da guia de SP/SADT TISS 4.02.00.
type GuiaSADT struct {
	RegistroANS         string `json:"registroANS" firestore:"registroANS"`
	NumeroGuiaPrestador string `json:"numeroGuiaPrestador" firestore:"numeroGuiaPrestador"`
	NumeroGuiaPrincipal string `json:"numeroGuiaPrincipal,omitempty" firestore:"numeroGuiaPrincipal,omitempty"`
	NumeroCarteira      string `json:"numeroCarteira" firestore:"numeroCarteira"`
	NomeBeneficiario    string `json:"nomeBeneficiario" firestore:"nomeBeneficiario"`
	ValidadeCarteira    string `json:"validadeCarteira,omitempty" firestore:"validadeCarteira,omitempty"`

	// Solicitante
	CodigoPrestadorSolicitante      string `json:"codigoPrestadorSolicitante" firestore:"codigoPrestadorSolicitante"`
	NomeContratadoSolicitante       string `json:"nomeContratadoSolicitante" firestore:"nomeContratadoSolicitante"`
	NomeProfissionalSolicitante     string `json:"nomeProfissionalSolicitante" firestore:"nomeProfissionalSolicitante"`
	ConselhoProfissionalSolicitante string `json:"conselhoProfissionalSolicitante" firestore:"conselhoProfissionalSolicitante"`
	NumeroConselhoSolicitante       string `json:"numeroConselhoSolicitante" firestore:"numeroConselhoSolicitante"`
	UFConselhoSolicitante           string `json:"ufConselhoSolicitante" firestore:"ufConselhoSolicitante"`
	CBOSSolicitante                 string `json:"cbosSolicitante,omitempty" firestore:"cbosSolicitante,omitempty"`

	// Executante
	CodigoPrestadorExecutante      string `json:"codigoPrestadorExecutante" firestore:"codigoPrestadorExecutante"`
	NomeContratadoExecutante       string `json:"nomeContratadoExecutante" firestore:"nomeContratadoExecutante"`
	CNESExecutante                 string `json:"cnesExecutante" firestore:"cnesExecutante"`
	NomeProfissionalExecutante     string `json:"nomeProfissionalExecutante" firestore:"nomeProfissionalExecutante"`
	ConselhoProfissionalExecutante string `json:"conselhoProfissionalExecutante" firestore:"conselhoProfissionalExecutante"`
	NumeroConselhoExecutante       string `json:"numeroConselhoExecutante" firestore:"numeroConselhoExecutante"`
	UFConselhoExecutante           string `json:"ufConselhoExecutante" firestore:"ufConselhoExecutante"`
	CBOSExecutante                 string `json:"cbosExecutante,omitempty" firestore:"cbosExecutante,omitempty"`

	CaraterAtendimento string    `json:"caraterAtendimento" firestore:"caraterAtendimento"`
	DataSolicitacao    time.Time `json:"dataSolicitacao" firestore:"dataSolicitacao"`
	IndicacaoClinica   string    `json:"indicacaoClinica" firestore:"indicacaoClinica"`

	ProcedimentosRealizados []ProcedimentoRealizado `json:"procedimentosRealizados" firestore:"procedimentosRealizados"`

	ValorTotalProcedimentos float64  `json:"valorTotalProcedimentos" firestore:"valorTotalProcedimentos"`
	ValorTaxasAlugueis      *float64 `json:"valorTaxasAlugueis,omitempty" firestore:"valorTaxasAlugueis,omitempty"`
	ValorMateriais          *float64 `json:"valorMateriais,omitempty" firestore:"valorMateriais,omitempty"`
	ValorMedicamentos       *float64 `json:"valorMedicamentos,omitempty" firestore:"valorMedicamentos,omitempty"`
	ValorOPME               *float64 `json:"valorOPME,omitempty" firestore:"valorOPME,omitempty"`
	ValorTotalGeral         float64  `json:"valorTotalGeral" firestore:"valorTotalGeral"`

	Observacao string `json:"observacao,omitempty" firestore:"observacao,omitempty"`
}

// Guia é o envelope persistido no Firestore: a guia serializada mais os
// metadados de faturamento que a operadora devolve ao longo do ciclo.
type Guia struct {
	ID                  string     `json:"id" firestore:"id"`
	ClinicaID           string     `json:"clinicaId" firestore:"clinicaId"`
	Tipo                TipoGuia   `json:"tipo" firestore:"tipo"`
	Status              StatusGuia `json:"status" firestore:"status"`
	RegistroANS         string     `json:"registroANS" firestore:"registroANS"`
	NumeroGuiaPrestador string     `json:"numeroGuiaPrestador" firestore:"numeroGuiaPrestador"`
	NumeroGuiaOperadora string     `json:"numeroGuiaOperadora,omitempty" firestore:"numeroGuiaOperadora,omitempty"`
	DataEmissao         time.Time  `json:"dataEmissao" firestore:"dataEmissao"`
	ValorFaturado       float64    `json:"valorFaturado" firestore:"valorFaturado"`
	ValorGlosado        float64    `json:"valorGlosado" firestore:"valorGlosado"`
	ValorRecebido       float64    `json:"valorRecebido" firestore:"valorRecebido"`
	XML                 string     `json:"xml,omitempty" firestore:"xml,omitempty"`

	Consulta *GuiaConsulta `json:"consulta,omitempty" firestore:"consulta,omitempty"`
	SADT     *GuiaSADT     `json:"sadt,omitempty" firestore:"sadt,omitempty"`
}

// ItemGlosado é uma linha glosada dentro de uma resposta da operadora.
type ItemGlosado struct {
	SequencialItem     int     `json:"sequencialItem" firestore:"sequencialItem"`
	CodigoProcedimento string  `json:"codigoProcedimento" firestore:"codigoProcedimento"`
	Descricao          string  `json:"descricao" firestore:"descricao"`
	ValorGlosado       float64 `json:"valorGlosado" firestore:"valorGlosado"`
	CodigoMotivo       string  `json:"codigoMotivo" firestore:"codigoMotivo"`
	DescricaoMotivo    string  `json:"descricaoMotivo" firestore:"descricaoMotivo"`
}

// RecursoGlosa é o recurso administrativo apresentado contra uma glosa.
type RecursoGlosa struct {
	Justificativa string    `json:"justificativa" firestore:"justificativa"`
	DataEnvio     time.Time `json:"dataEnvio" firestore:"dataEnvio"`
	Status        string    `json:"status" firestore:"status"`
}

// Glosa é a forma canônica de uma negativa de pagamento, qualquer que tenha
// sido o formato enviado pela operadora.
type Glosa struct {
	ID                  string        `json:"id,omitempty" firestore:"id,omitempty"`
	ClinicaID           string        `json:"clinicaId,omitempty" firestore:"clinicaId,omitempty"`
	NumeroGuiaPrestador string        `json:"numeroGuiaPrestador" firestore:"numeroGuiaPrestador"`
	RegistroANS         string        `json:"registroANS,omitempty" firestore:"registroANS,omitempty"`
	TipoGuia            TipoGuia      `json:"tipoGuia" firestore:"tipoGuia"`
	DataRecebimento     time.Time     `json:"dataRecebimento" firestore:"dataRecebimento"`
	ValorOriginal       float64       `json:"valorOriginal" firestore:"valorOriginal"`
	ValorGlosado        float64       `json:"valorGlosado" firestore:"valorGlosado"`
	ValorAprovado       float64       `json:"valorAprovado" firestore:"valorAprovado"`
	Itens               []ItemGlosado `json:"itens" firestore:"itens"`
	PrazoRecurso        time.Time     `json:"prazoRecurso" firestore:"prazoRecurso"`
	Status              StatusGlosa   `json:"status" firestore:"status"`
	Observacao          string        `json:"observacao,omitempty" firestore:"observacao,omitempty"`
	Recurso             *RecursoGlosa `json:"recurso,omitempty" firestore:"recurso,omitempty"`
}

// ResumoOperadora é o subtotal de faturamento de uma operadora no período.
type ResumoOperadora struct {
	RegistroANS   string  `json:"registroANS"`
	Guias         int     `json:"guias"`
	ValorFaturado float64 `json:"valorFaturado"`
	ValorGlosado  float64 `json:"valorGlosado"`
	ValorRecebido float64 `json:"valorRecebido"`
}

// ResumoFaturamento é o agregado de faturamento de uma clínica no período.
// Recalculado a cada chamada; nunca persistido.
type ResumoFaturamento struct {
	Inicio        time.Time                  `json:"inicio"`
	Fim           time.Time                  `json:"fim"`
	TotalGuias    int                        `json:"totalGuias"`
	PorTipo       map[TipoGuia]int           `json:"porTipo"`
	PorStatus     map[StatusGuia]int         `json:"porStatus"`
	ValorFaturado float64                    `json:"valorFaturado"`
	ValorGlosado  float64                    `json:"valorGlosado"`
	ValorRecebido float64                    `json:"valorRecebido"`
	TaxaGlosa     float64                    `json:"taxaGlosa"`
	PorOperadora  map[string]ResumoOperadora `json:"porOperadora"`
}

// MotivoAgregado é o agrupamento de itens glosados por código de motivo.
type MotivoAgregado struct {
	CodigoMotivo    string  `json:"codigoMotivo"`
	DescricaoMotivo string  `json:"descricaoMotivo"`
	Quantidade      int     `json:"quantidade"`
	Valor           float64 `json:"valor"`
	Percentual      float64 `json:"percentual"`
}

// AnaliseGlosas é o agregado de glosas de uma clínica no período.
type AnaliseGlosas struct {
	Inicio          time.Time                  `json:"inicio"`
	Fim             time.Time                  `json:"fim"`
	TotalGlosas     int                        `json:"totalGlosas"`
	ValorGlosado    float64                    `json:"valorGlosado"`
	ValorRecuperado float64                    `json:"valorRecuperado"`
	TaxaRecuperacao float64                    `json:"taxaRecuperacao"`
	PorMotivo       []MotivoAgregado           `json:"porMotivo"`
	PorOperadora    map[string]ResumoOperadora `json:"porOperadora"`
}
