package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"marketstall/internal/config"
	"marketstall/internal/db"
	"marketstall/internal/importer"
	"marketstall/internal/repository/product"
)

func main() {
	var (
		filePath string
		ownerID  string
	)
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV export")
	flag.StringVar(&ownerID, "owner", "", "Identity subject of the seller to import for")
	flag.Parse()

	if filePath == "" || ownerID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, nil), ownerID)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products for owner %s in %s\n", count, ownerID, time.Since(start).Truncate(time.Millisecond))
}
