package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"inventory/cmd"
	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/out/postgres/auditrepo"
	"inventory/internal/adapters/out/postgres/collegerepo"
	"inventory/internal/adapters/out/postgres/custodyrepo"
	"inventory/internal/adapters/out/postgres/itemrepo"
	"inventory/internal/adapters/out/postgres/requestrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		BackupDir:           envOrDefault("BACKUP_DIR", "./backups"),
		LowStockSchedule:    envOrDefault("LOW_STOCK_SCHEDULE", "@hourly"),
		AuditExportSchedule: envOrDefault("AUDIT_EXPORT_SCHEDULE", "@daily"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&itemrepo.ItemDTO{},
		&collegerepo.CollegeDTO{},
		&requestrepo.RequestDTO{},
		&custodyrepo.BalanceDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateRequest:   app.CreateCreateRequestCommandHandler(),
			ApproveRequest:  app.CreateApproveRequestCommandHandler(),
			RejectRequest:   app.CreateRejectRequestCommandHandler(),
			PickupRequest:   app.CreatePickupRequestCommandHandler(),
			DeliverRequest:  app.CreateDeliverRequestCommandHandler(),
			PickupReturn:    app.CreatePickupReturnCommandHandler(),
			DeliverReturn:   app.CreateDeliverReturnCommandHandler(),
			AddItem:         app.CreateAddItemCommandHandler(),
			UpdateItem:      app.CreateUpdateItemCommandHandler(),
			RemoveItem:      app.CreateRemoveItemCommandHandler(),
			AdjustStock:     app.CreateAdjustStockCommandHandler(),
			RegisterCollege: app.CreateRegisterCollegeCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetPendingRequests: app.CreateGetPendingRequestsQueryHandler(),
			GetRequestsByStage: app.CreateGetRequestsByStageQueryHandler(),
			GetCollegeRequests: app.CreateGetCollegeRequestsQueryHandler(),
			GetItems:           app.CreateGetItemsQueryHandler(),
			GetLowStockItems:   app.CreateGetLowStockItemsQueryHandler(),
			GetCollegeCustody:  app.CreateGetCollegeCustodyQueryHandler(),
			GetAllCustody:      app.CreateGetAllCustodyQueryHandler(),
			GetAuditTrail:      app.CreateGetAuditTrailQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
