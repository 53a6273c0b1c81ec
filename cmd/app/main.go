package main

import (
	"fmt"
	"log/slog"
	"os"
	"workshop/cmd"
	httpin "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres/catalogrepo"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/adapters/out/postgres/workorderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&vehiclerepo.VehicleDTO{},
		&catalogrepo.ServiceDTO{},
		&catalogrepo.MaterialDTO{},
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.ServiceLinkDTO{},
		&workorderrepo.MaterialLinkDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateUpdateWorkOrderCommandHandler(),
		app.CreateUpdateWorkOrderStatusCommandHandler(),
		app.CreateApproveWorkOrderCommandHandler(),
		app.CreateDisapproveWorkOrderCommandHandler(),
		app.CreateDeleteWorkOrderCommandHandler(),
		app.CreateAddServiceCommandHandler(),
		app.CreateRemoveServiceCommandHandler(),
		app.CreateAddMaterialCommandHandler(),
		app.CreateRemoveMaterialCommandHandler(),
		app.CreateGetWorkOrdersQueryHandler(),
		app.CreateGetWorkOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
