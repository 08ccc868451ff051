package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/repository/specification"
	"gift-recommender-be/internal/repository/unitofwork"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "data/products.json", "catalog JSON file to import")
	flag.Parse()

	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", *file, err)
	}
	products, skipped, err := catalog.DecodeProducts(raw)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	for _, rec := range skipped {
		log.Printf("Warning: skipping %v", rec)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	log.Printf("Seeding %d products from %s...", len(products), *file)

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to begin transaction: %v", err)
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.Id
	}
	existing, err := uow.ProductRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		uow.Rollback()
		log.Fatalf("Error: Failed to look up existing products: %v", err)
	}
	seen := make(map[uuid.UUID]bool, len(existing))
	for _, p := range existing {
		seen[p.Id] = true
	}

	fresh := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if seen[p.Id] {
			log.Printf("Product '%s' already exists, skipping...", p.Name)
			continue
		}
		fresh = append(fresh, p)
	}

	if len(fresh) > 0 {
		if err := uow.ProductRepository().CreateBulk(ctx, fresh); err != nil {
			uow.Rollback()
			log.Fatalf("Error: Failed to insert products: %v", err)
		}
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: Failed to commit: %v", err)
	}

	log.Printf("Success: %d inserted, %d skipped.", len(fresh), len(products)-len(fresh))
}
