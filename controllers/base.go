package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/infra/db/dao"
	"github.com/finport/portfolio-etl/infra/locker"
	"github.com/finport/portfolio-etl/middlewares"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
	Locker *locker.Locker
}

func (a *App) Initialize(cfg *config.Config) error {
	var err error
	a.Config = cfg

	a.DB, err = gorm.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("cannot connect to database %s: %w", cfg.Database.Path, err)
	}
	log.Printf("Connected to database %s", cfg.Database.Path)

	if err := dao.NewDaoMethod(a.DB).InitSchema(); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	a.Locker = locker.New()
	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	RegisterPipelineRoutes(a.Router, a.newPipelineHandler())
}

func (a *App) RunServer() {
	port := a.Config.Server.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}

// Close releases the store connection.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
