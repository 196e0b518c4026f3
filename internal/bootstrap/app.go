package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/activity"
	"portal-backend/internal/clients"
	"portal-backend/internal/documents"
	"portal-backend/internal/messages"
	"portal-backend/internal/presets"
	"portal-backend/internal/services/health"
	"portal-backend/internal/shared/config"
	"portal-backend/internal/shared/server"
	"portal-backend/internal/shared/storage/db"
	"portal-backend/internal/shared/storage/object"
	localstore "portal-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo    documents.Repo
	ClientsRepo      clients.Repo
	PresetStore      *presets.FileStore
	ActivityStore    *activity.Store
	DocumentsService *documents.Service
	PresetsService   *presets.Service
	ClientsService   *clients.Service
	MessagesService  *messages.Service
	DocumentsHandler *documents.Handler
	PresetsHandler   *presets.Handler
	ClientsHandler   *clients.Handler
	MessagesHandler  *messages.Handler
	ActivityHandler  *activity.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		PresetHandler:   app.PresetsHandler,
		ClientHandler:   app.ClientsHandler,
		MessageHandler:  app.MessagesHandler,
		ActivityHandler: app.ActivityHandler,
		Health:          health.NewService(),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var docRepo documents.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	activityStore := activity.NewStore()

	docSvc := &documents.Service{
		Repo:     docRepo,
		Store:    app.Store,
		Activity: activityStore,
	}

	presetStore := presets.NewFileStore(app.Config.PresetsFile)
	presetSvc := &presets.Service{
		Store: presetStore,
		Docs:  docSvc,
	}

	clientRepo := clients.NewMemoryRepo()
	clientSvc := &clients.Service{
		Repo: clientRepo,
		Docs: docSvc,
	}

	msgSvc := &messages.Service{
		Repo:     messages.NewMemoryRepo(),
		Activity: activityStore,
	}

	app.DocumentsRepo = docRepo
	app.ClientsRepo = clientRepo
	app.PresetStore = presetStore
	app.ActivityStore = activityStore
	app.DocumentsService = docSvc
	app.PresetsService = presetSvc
	app.ClientsService = clientSvc
	app.MessagesService = msgSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.PresetsHandler = presets.NewHandler(presetSvc)
	app.ClientsHandler = clients.NewHandler(clientSvc)
	app.MessagesHandler = messages.NewHandler(msgSvc)
	app.ActivityHandler = activity.NewHandler(activityStore)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
