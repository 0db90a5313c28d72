package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/infra/db/dao"
	pipelineUsecase "github.com/finport/portfolio-etl/usecase/pipeline"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
)

// One-shot pipeline run: extract, transform, load, report, exit.
func main() {
	cfg, err := config.Load(consts.DefaultConfigFile)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	db, err := gorm.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		log.Fatal("cannot connect to database: ", err)
	}
	defer db.Close()

	pipeline := pipelineUsecase.NewPipelineUsecase(cfg, dao.NewDaoMethod(db))
	report, err := pipeline.Run(context.Background())
	if err != nil {
		fmt.Printf("\nETL pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nETL PIPELINE COMPLETED SUCCESSFULLY!")
	fmt.Println("\nData Summary:")
	for name, table := range report.Summary {
		fmt.Printf("  %s: %d rows, %d columns, %.2f MB\n",
			name, table.RowCount, table.ColumnCount, table.MemoryUsageMB)
	}
}
