package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"

	"stablecard/internal/catalog"
	"stablecard/internal/database"
)

func main() {
	log.SetLevel(log.InfoLevel)
	log.Println("starting migrate")

	dbConn := getEnv("DB_CONN", "user=ps_user password=ps_password dbname=stablecard sslmode=disable host=0.0.0.0")
	migrationsPath := getEnv("MIGRATIONS_PATH", "./migrations")

	db, err := sql.Open("postgres", dbConn)

	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Errorf("closing the db: %v", err)
		}
	}(db)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres", driver)

	if err != nil {
		log.Fatal(err)
	}

	// Apply the migrations
	err = m.Up()
	if err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal(err)
		}
	}

	log.Println("migrations complete")

	// CATALOG_IMPORT replaces the stored catalog with a validated file.
	if path := os.Getenv("CATALOG_IMPORT"); path != "" {
		if err := importCatalog(dbConn, path); err != nil {
			log.Fatalf("importing catalog: %v", err)
		}
	}
}

func importCatalog(dbConn, path string) error {
	issuers, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}

	if err := catalog.Validate(issuers); err != nil {
		return err
	}

	client, err := database.NewClient(dbConn)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.ReplaceIssuers(context.Background(), issuers); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"path":    path,
		"issuers": len(issuers),
	}).Info("catalog imported")

	return nil
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}
