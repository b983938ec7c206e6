package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "tms_gruas/docs" // This will be auto-generated
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"
	repository2 "tms_gruas/internal/adapter/persistence/repository"
	"tms_gruas/internal/infrastructure/backup"
	"tms_gruas/internal/infrastructure/database"
	"tms_gruas/internal/infrastructure/email"
	"tms_gruas/internal/infrastructure/imaging"
	"tms_gruas/internal/infrastructure/localstore"
	"tms_gruas/internal/infrastructure/payments"
	"tms_gruas/internal/infrastructure/pdf"
	"tms_gruas/internal/usecase"
	"tms_gruas/internal/usecase/interfaces"
	"tms_gruas/pkg/retry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	craneRepo := repository2.NewCraneDynamoRepository(ddb)
	operatorRepo := repository2.NewOperatorDynamoRepository(ddb)
	closureRepo := repository2.NewClosureDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewInvoicePaymentDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	policy := retry.Policy{MaxRetries: 2, Delay: 500 * time.Millisecond}

	var emailGateway interfaces.IEmailGateway
	smtpGateway, err := email.NewSMTPGateway(email.ConfigFromEnv(), policy)
	if err != nil {
		log.Printf("SMTP gateway not configured: %v", err)
	} else {
		emailGateway = smtpGateway
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), policy)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	draftStore, err := localstore.NewStore(getenvDefault("DRAFT_DIR", "./data/drafts"))
	if err != nil {
		log.Fatalf("Failed to open the draft store: %v", err)
	}
	newSaver := interfaces.DraftSaverFactory(func(key string) interfaces.IDraftSaver {
		return localstore.NewDebouncer(draftStore, key, 0)
	})

	photos := imaging.NewProcessor()
	pdfGenerator := pdf.NewGenerator()

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, clientRepo, settingsRepo, emailGateway)
	startUseCase := usecase.NewStartServiceUseCase(serviceRepo, clientRepo, pdfGenerator, emailGateway)
	inspectionUseCase := usecase.NewInspectionUseCase(serviceRepo, settingsRepo, draftStore, newSaver)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	craneUseCase := usecase.NewCraneUseCase(craneRepo)
	operatorUseCase := usecase.NewOperatorUseCase(operatorRepo)
	closureUseCase := usecase.NewClosureUseCase(closureRepo, serviceRepo, clientRepo, settingsRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, closureRepo, clientRepo, settingsRepo, emailGateway)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, paymentGateway)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	backupUseCase := usecase.NewBackupUseCase(backup.NewExporter(ddb))

	serviceHandler := handlers.NewServiceHandler(serviceUseCase, startUseCase, inspectionUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	fleetHandler := handlers.NewFleetHandler(craneUseCase, operatorUseCase)
	closureHandler := handlers.NewClosureHandler(closureUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, paymentUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase, photos)
	mediaHandler := handlers.NewMediaHandler(photos)
	backupHandler := handlers.NewBackupHandler(backupUseCase)

	hub := ws.NewHub()

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, serviceHandler, hub)
	addClientRoutes(v1, clientHandler, hub)
	addFleetRoutes(v1, fleetHandler, hub)
	addBillingRoutes(v1, closureHandler, invoiceHandler, hub)
	addAdminRoutes(v1, settingsHandler, mediaHandler, backupHandler, hub)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// notifyChanges broadcasts a change event after a successful mutating
// request so connected dashboards can refresh their lists.
func notifyChanges(hub *ws.Hub, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= http.StatusMultipleChoices {
			return
		}
		var action string
		switch c.Request.Method {
		case http.MethodPost:
			action = "created"
		case http.MethodPut, http.MethodPatch:
			action = "updated"
		case http.MethodDelete:
			action = "deleted"
		default:
			return
		}
		hub.Notify(resource, action, c.Param("id"))
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
