package dataset

import (
	"log"
	"path/filepath"

	gocache "github.com/patrickmn/go-cache"

	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Process-wide cache for loaded record sets, keyed by absolute source path.
// The validated set never changes during a session, so entries never expire;
// derived tables are recomputed from it on every filter change instead.
var recordCache = gocache.New(gocache.NoExpiration, 0)

// Load returns the validated record set for path, reading and parsing the
// source at most once per process.
func Load(path string) ([]models.Record, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	if cached, ok := recordCache.Get(key); ok {
		return cached.([]models.Record), nil
	}

	records, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	recordCache.Set(key, records, gocache.NoExpiration)
	log.Printf("Dataset loaded: %d valid records from %s", len(records), path)
	return records, nil
}
