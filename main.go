package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/controllers"
	"github.com/finport/portfolio-etl/infra/db/dao"
	monitorUsecase "github.com/finport/portfolio-etl/usecase/monitor"
	pipelineUsecase "github.com/finport/portfolio-etl/usecase/pipeline"
	setupUsecase "github.com/finport/portfolio-etl/usecase/setup"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
)

func main() {
	cfg, err := config.Load(consts.DefaultConfigFile)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	fmt.Println("FinTech Data Engineering Project")
	fmt.Println(strings.Repeat("=", 50))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\nMenu:")
		fmt.Println("1. Setup project (first time)")
		fmt.Println("2. Run ETL pipeline")
		fmt.Println("3. Start analytics server")
		fmt.Println("4. Check database")
		fmt.Println("5. Exit")
		fmt.Print("\nEnter choice (1-5): ")

		choice, _ := reader.ReadString('\n')
		switch strings.TrimSpace(choice) {
		case "1":
			fmt.Println("\nSetting up project...")
			runSetup(cfg)
		case "2":
			fmt.Println("\nRunning ETL pipeline...")
			runPipeline(cfg)
		case "3":
			fmt.Println("\nStarting analytics server...")
			fmt.Println("Press Ctrl+C to stop")
			runServer(cfg)
		case "4":
			fmt.Println("\nChecking database...")
			runHealthCheck(cfg, reader)
		case "5":
			fmt.Println("\nGoodbye!")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

// withStore opens the store for the duration of one menu action, so the
// connection is released on every exit path.
func withStore(cfg *config.Config, action func(d dao.DaoMethod) error) {
	db, err := gorm.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		fmt.Printf("Error: cannot connect to database %s: %v\n", cfg.Database.Path, err)
		return
	}
	defer db.Close()

	if err := action(dao.NewDaoMethod(db)); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func runSetup(cfg *config.Config) {
	// The store directory must exist before sqlite can create the file.
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	withStore(cfg, func(d dao.DaoMethod) error {
		return setupUsecase.NewSetupUsecase(cfg, d).Setup()
	})
}

func runPipeline(cfg *config.Config) {
	withStore(cfg, func(d dao.DaoMethod) error {
		report, err := pipelineUsecase.NewPipelineUsecase(cfg, d).Run(context.Background())
		if err != nil {
			return err
		}
		fmt.Println("\nETL pipeline completed")
		for name, table := range report.Summary {
			fmt.Printf("  %s: %d rows\n", name, table.RowCount)
		}
		return nil
	})
}

func runServer(cfg *config.Config) {
	app := controllers.App{}
	if err := app.Initialize(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer app.Close()
	app.RunServer()
}

func runHealthCheck(cfg *config.Config, reader *bufio.Reader) {
	withStore(cfg, func(d dao.DaoMethod) error {
		monitor := monitorUsecase.NewMonitorUsecase(cfg, d)

		report, err := monitor.CheckHealth()
		if err != nil {
			return err
		}
		fmt.Printf("Found %d tables:\n", len(report.Tables))
		for _, table := range report.Tables {
			fmt.Printf("  %s: %d rows\n", table.Name, table.RowCount)
		}
		if report.LatestTransaction != "" {
			fmt.Printf("Latest transaction: %s\n", report.LatestTransaction)
		}

		fmt.Print("Create backup? (y/n): ")
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) == "y" {
			backupPath, err := monitor.BackupDatabase()
			if err != nil {
				return err
			}
			fmt.Printf("Database backed up to: %s\n", backupPath)
		}
		return nil
	})
}
