// internal/core/glosa/motivos.go
package glosa

// MotivoGlosa descreve um código de glosa da ANS e a conduta sugerida para o
// faturista. Vocabulário regulatório: os textos são fixos, não editáveis.
type MotivoGlosa struct {
	Descricao    string `json:"descricao"`
	Recomendacao string `json:"recomendacao"`
}

// CodigoMotivoOutros é o código genérico usado quando a operadora não
// classifica a glosa.
const CodigoMotivoOutros = "outros"

var motivos = map[string]MotivoGlosa{
	"A1": {
		Descricao:    "Beneficiário não identificado ou carteira inválida",
		Recomendacao: "Confirme o número e a validade da carteira com o beneficiário e reenvie a guia corrigida",
	},
	"A2": {
		Descricao:    "Beneficiário em período de carência contratual",
		Recomendacao: "Verifique a data de adesão ao plano; se a carência já estava cumprida na data do atendimento, recorra com o comprovante",
	},
	"A3": {
		Descricao:    "Procedimento não coberto pelo contrato do beneficiário",
		Recomendacao: "Consulte o rol de cobertura do plano; havendo cobertura obrigatória pela ANS, recorra citando a RN vigente",
	},
	"A4": {
		Descricao:    "Procedimento executado sem autorização prévia da operadora",
		Recomendacao: "Anexe a senha ou guia de autorização ao recurso; sem autorização, negocie diretamente com a operadora",
	},
	"A5": {
		Descricao:    "Código de procedimento inválido ou incompatível com a tabela informada",
		Recomendacao: "Confira o código na tabela TUSS vigente e reapresente a cobrança com o código correto",
	},
	"A6": {
		Descricao:    "Quantidade executada superior à quantidade autorizada",
		Recomendacao: "Recorra apenas pela quantidade autorizada ou apresente justificativa clínica para o excedente",
	},
	"A7": {
		Descricao:    "Valor apresentado acima do valor contratado",
		Recomendacao: "Confronte o valor cobrado com a tabela negociada no contrato e reapresente pela diferença devida",
	},
	"A8": {
		Descricao:    "Atendimento realizado após o vencimento da autorização",
		Recomendacao: "Solicite revalidação da autorização junto à operadora antes de reapresentar",
	},
	"A9": {
		Descricao:    "Cobrança apresentada em duplicidade",
		Recomendacao: "Verifique se a guia já consta em lote anterior; sendo cobrança distinta, demonstre no recurso datas e horários diferentes",
	},
	"A10": {
		Descricao:    "Guia preenchida com dados incompletos ou ilegíveis",
		Recomendacao: "Complete os campos obrigatórios apontados e reapresente a guia",
	},
	"B1": {
		Descricao:    "Prestador não pertencente à rede credenciada na data do atendimento",
		Recomendacao: "Confirme a vigência do credenciamento; estando ativo, anexe o contrato ao recurso",
	},
	"B2": {
		Descricao:    "Profissional executante sem habilitação registrada para o procedimento",
		Recomendacao: "Atualize o cadastro do profissional junto à operadora com o registro de especialidade",
	},
	"C1": {
		Descricao:    "Documentação complementar não apresentada ou insuficiente",
		Recomendacao: "Anexe laudo, relatório ou exame que fundamente a cobrança e reapresente em recurso",
	},
	CodigoMotivoOutros: {
		Descricao:    "Glosa não classificada pela operadora",
		Recomendacao: "Solicite à operadora o detalhamento do motivo antes de formalizar o recurso",
	},
}

// DescricaoMotivo devolve a descrição e a recomendação do código de glosa.
// Códigos desconhecidos recebem o par genérico de "outros".
func DescricaoMotivo(codigo string) MotivoGlosa {
	if m, ok := motivos[codigo]; ok {
		return m
	}
	return motivos[CodigoMotivoOutros]
}
