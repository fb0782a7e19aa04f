// cmd/web/main.go
package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vidaclin/faturamento/internal/api/handlers"
	"github.com/vidaclin/faturamento/internal/api/middleware"
	"github.com/vidaclin/faturamento/internal/api/responses"
	"github.com/vidaclin/faturamento/internal/core/auth"
	"github.com/vidaclin/faturamento/internal/core/guias"
	"github.com/vidaclin/faturamento/internal/core/relatorios"
	"github.com/vidaclin/faturamento/internal/core/tuss"
	"github.com/vidaclin/faturamento/internal/storage"
)

// initFirestoreClient initializes the Firestore client.
func initFirestoreClient(ctx context.Context) *firestore.Client {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		projectID = "vidaclin-faturamento"
	}
	databaseID := os.Getenv("FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		databaseID = "vidaclin-faturamento"
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		log.Fatalf("Erro ao inicializar cliente Firestore para o banco '%s': %v\n", databaseID, err)
	}
	log.Printf("Conectado com sucesso ao Firestore, banco de dados: %s", databaseID)
	return client
}

func main() {
	_ = godotenv.Load()
	responses.InitLogger()

	ctx := context.Background()
	firestoreClient := initFirestoreClient(ctx)
	defer firestoreClient.Close()

	store := storage.NewFirestoreStore(firestoreClient)
	tussService := tuss.NewService()
	guiasService := guias.NewService(store)
	relatoriosService := relatorios.NewService(store)
	authService := auth.NewService(firestoreClient)

	authHandler := handlers.NewAuthHandler(authService)
	tussHandler := handlers.NewTussHandler(tussService)
	guiasHandler := handlers.NewGuiasHandler(guiasService)
	glosasHandler := handlers.NewGlosasHandler(guiasService, store)
	relatoriosHandler := handlers.NewRelatoriosHandler(relatoriosService)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/login", authHandler.Login)
		protected := apiV1.Group("/")
		protected.Use(middleware.AuthMiddleware(nil))
		{
			protected.GET("/tuss/search", tussHandler.HandleSearch)
			protected.GET("/tuss/grupos", tussHandler.HandleListGroups)
			protected.GET("/tuss/grupos/:grupo", tussHandler.HandleGetByGroup)
			protected.GET("/tuss/:codigo", tussHandler.HandleGetByCode)

			protected.POST("/guias/consulta", guiasHandler.HandleCriarConsulta)
			protected.POST("/guias/sadt", guiasHandler.HandleCriarSADT)
			protected.GET("/guias/:id", guiasHandler.HandleObter)
			protected.GET("/guias/:id/xml", guiasHandler.HandleBaixarXML)
			protected.PATCH("/guias/:id/status", guiasHandler.HandleAtualizarStatus)
			protected.POST("/guias/:id/resposta", guiasHandler.HandleRegistrarResposta)

			protected.POST("/glosas/importar/xml", glosasHandler.HandleImportarXML)
			protected.POST("/glosas/importar", glosasHandler.HandleImportar)
			protected.POST("/glosas/:id/recurso", glosasHandler.HandleCriarRecurso)
			protected.GET("/glosas/:id/prazo", glosasHandler.HandleObterPrazo)
			protected.GET("/glosas/motivos/:codigo", glosasHandler.HandleMotivo)
			protected.GET("/glosas/estatisticas", glosasHandler.HandleEstatisticas)

			protected.GET("/relatorios/faturamento", relatoriosHandler.HandleResumoFaturamento)
			protected.GET("/relatorios/glosas", relatoriosHandler.HandleAnaliseGlosas)
			protected.GET("/relatorios/faturamento/export", relatoriosHandler.HandleExportarResumo)
		}
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Servidor iniciado e escutando na porta %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Falha ao iniciar o servidor: ", err)
	}
}
