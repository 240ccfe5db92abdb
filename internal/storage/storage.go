package storage

import (
	"gotest1/internal/config"
	"gotest1/internal/domain"
)

// Storage persists and loads the record of the last run
type Storage interface {
	Save(record domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// JSONStorage stores the record in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
