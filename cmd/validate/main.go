package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf"
	log "github.com/sirupsen/logrus"

	"stablecard/internal/catalog"
)

type Config struct {
	// CatalogPath is the .json or .yaml file to check.
	CatalogPath string `conf:"default:data/issuers.json"`
}

func main() {
	var cfg Config
	if err := conf.Parse(os.Args[1:], "VALIDATE", &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := conf.Usage("VALIDATE", &cfg)
			if err != nil {
				log.Fatalf("generating usage: %v", err)
			}
			fmt.Println(usage)
			return
		}
		log.Fatalf("parsing config: %v", err)
	}

	os.Exit(run(cfg.CatalogPath))
}

func run(path string) int {
	issuers, err := catalog.ReadFile(path)
	if err != nil {
		log.Errorf("reading %s: %v", path, err)
		return 1
	}

	if err := catalog.Validate(issuers); err != nil {
		var verr *catalog.ValidationError
		if !errors.As(err, &verr) {
			log.Errorf("validating %s: %v", path, err)
			return 1
		}

		fmt.Fprintln(os.Stderr, "validation failed:")
		for _, p := range verr.Problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		return 1
	}

	fmt.Printf("validation passed: %d issuers validated\n", len(issuers))
	return 0
}
