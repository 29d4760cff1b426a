package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"stablecard/internal/domainerrors"
	"stablecard/internal/model"
)

// FileSource reads the catalog from the first path in Paths that exists.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
type FileSource struct {
	Paths []string
}

func (s FileSource) GetIssuers(_ context.Context) ([]model.Issuer, error) {
	for _, path := range s.Paths {
		issuers, err := ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("path", path).Debug("catalog file not found, trying next path")
			continue
		}
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"path":    path,
			"issuers": len(issuers),
		}).Info("loaded issuer catalog file")
		return issuers, nil
	}

	return nil, domainerrors.New(domainerrors.CodeUnavailable,
		fmt.Sprintf("no catalog file found, tried: %s", strings.Join(s.Paths, ", ")))
}

func ReadFile(path string) ([]model.Issuer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	issuers, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return issuers, nil
}

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a top-level array of issuers.
func Decode(r io.Reader, format string) ([]model.Issuer, error) {
	var issuers []model.Issuer

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&issuers); err != nil && !errors.Is(err, io.EOF) {
			return nil, domainerrors.Wrap(err, domainerrors.CodeValidation,
				fmt.Sprintf("catalog must be a YAML list of issuers: %v", err))
		}
	default:
		if err := json.NewDecoder(r).Decode(&issuers); err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeValidation,
				fmt.Sprintf("catalog must be a JSON array of issuers: %v", err))
		}
	}

	if issuers == nil {
		issuers = []model.Issuer{}
	}
	return issuers, nil
}
