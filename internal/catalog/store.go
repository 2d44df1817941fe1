package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"snapengine/internal/logging"
)

// File is the YAML document shape of a catalog override file.
type File struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Store loads rule catalogs from YAML so policy can be revised without
// touching classifier code. The store only reads; catalogs are immutable
// once built.
type Store struct {
	CatalogFile string
	logger      logging.Logger
}

// NewStore creates a catalog store for the given file. An empty path means
// "built-in rules only".
func NewStore(catalogFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{
		CatalogFile: catalogFile,
		logger:      logger,
	}
}

// Load returns the catalog snapshot for a run: the YAML file when present,
// the built-in rule set otherwise. Only a malformed file is an error;
// absence falls back to the defaults with a warning.
func (s *Store) Load() (*Catalog, error) {
	if s.CatalogFile == "" {
		return Default(), nil
	}

	path, err := s.findConfigFile(s.CatalogFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Catalog file not found, using built-in rules",
				logging.Field{Key: "file", Value: s.CatalogFile})
			return Default(), nil
		}
		return nil, fmt.Errorf("error resolving catalog file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog file %s: %w", path, err)
	}

	c, err := New(file.Version, file.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}

	s.logger.Info("Loaded rule catalog",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "version", Value: c.Version()},
		logging.Field{Key: "rules", Value: c.Len()})
	return c, nil
}

// findConfigFile looks for the catalog file in standard locations.
func (s *Store) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "snapengine", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
