package store

import (
	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/logger"
)

// Storages groups the repositories built on one connection pool.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, hasher crypto.PasswordHasher, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, hasher, log),
	}
}
