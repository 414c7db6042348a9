// Package session is the server-side replacement for the SPA's
// localStorage session: one JSON record per browser session, kept in a
// fiber.Storage backend (Redis when configured).
package session

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/model"
)

const keyPrefix = "session:"

// Repository is the injectable session store. Get never fails on a
// malformed record: corrupted state decodes to an empty session, the same
// defaulting contract the SPA applied to localStorage.
type Repository interface {
	Get(id string) (*model.Session, error)
	Set(id string, sess *model.Session) error
	Delete(id string) error
}

type storageRepo struct {
	storage fiber.Storage
	ttl     time.Duration
	log     *slog.Logger
}

func New(storage fiber.Storage, ttl time.Duration, log *slog.Logger) Repository {
	return &storageRepo{storage: storage, ttl: ttl, log: log}
}

func (r *storageRepo) Get(id string) (*model.Session, error) {
	raw, err := r.storage.Get(keyPrefix + id)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Corrupted record: treat as an empty session, not an error.
		r.log.Warn("discarding malformed session record", "session", id)
		return &model.Session{}, nil
	}
	return &sess, nil
}

func (r *storageRepo) Set(id string, sess *model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.storage.Set(keyPrefix+id, raw, r.ttl)
}

func (r *storageRepo) Delete(id string) error {
	return r.storage.Delete(keyPrefix + id)
}
