// internal/api/responses/responses.go
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// InitLogger configura o logger estruturado da aplicação. Deve ser chamado
// uma vez, no boot.
func InitLogger() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = zl.Sugar()
}

// Logger devolve o logger da aplicação; utilizável mesmo antes do InitLogger
// em testes.
func Logger() *zap.SugaredLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return logger
}

// Error responde o erro em JSON e registra os detalhes no log, sem vazá-los
// para o cliente.
func Error(c *gin.Context, status int, mensagem string, detalhes ...string) {
	if len(detalhes) > 0 {
		Logger().Errorw(mensagem, "status", status, "detalhes", detalhes, "path", c.FullPath())
	} else if status >= http.StatusInternalServerError {
		Logger().Errorw(mensagem, "status", status, "path", c.FullPath())
	}
	c.JSON(status, gin.H{"error": mensagem})
}

// ErrorList responde um erro de validação com a lista completa de violações.
func ErrorList(c *gin.Context, status int, mensagem string, erros []string) {
	c.JSON(status, gin.H{"error": mensagem, "erros": erros})
}
