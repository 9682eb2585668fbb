package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/crypto"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/models"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

var testAuthConfig = config.Auth{
	TokenSignKey:  testSignKey,
	TokenIssuer:   "streama-test",
	TokenDuration: time.Hour,
}

// testHasher keeps argon2 cheap enough for unit tests.
func testHasher() crypto.PasswordHasher {
	return crypto.NewArgon2Hasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
}

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequentialIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", s.n)
}

func strPtr(s string) *string { return &s }

// memUserRepository is an in-memory UserRepository with the same hashing
// and soft-delete semantics as the postgres one.
type memUserRepository struct {
	mu     sync.Mutex
	users  map[string]models.User
	hasher crypto.PasswordHasher
}

func newMemUserRepository(hasher crypto.PasswordHasher) *memUserRepository {
	return &memUserRepository{users: map[string]models.User{}, hasher: hasher}
}

func (m *memUserRepository) project(u models.User, opts models.FindOptions) (models.User, error) {
	if u.IsDeleted() && !opts.WithDeleted {
		return models.User{}, store.ErrUserNotFound
	}
	if !opts.WithPassword {
		u.Password = ""
	}
	return u, nil
}

func (m *memUserRepository) FindByEmail(_ context.Context, email string, opts models.FindOptions) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return m.project(u, opts)
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memUserRepository) FindByID(_ context.Context, id string, opts models.FindOptions) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return m.project(u, opts)
}

func (m *memUserRepository) FindAll(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if !u.IsDeleted() {
			u.Password = ""
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserRepository) hash(u *models.User) error {
	if u.Password == "" || m.hasher.IsHashed(u.Password) {
		return nil
	}
	h, err := m.hasher.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = h
	return nil
}

func (m *memUserRepository) Create(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	if err := m.hash(&user); err != nil {
		return models.User{}, err
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	m.users[user.ID] = user
	user.Password = ""
	return user, nil
}

func (m *memUserRepository) Save(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.users[user.ID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if err := m.hash(&user); err != nil {
		return models.User{}, err
	}
	if user.Password == "" {
		user.Password = stored.Password
	}
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	user.Password = ""
	return user, nil
}

func (m *memUserRepository) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	u.LastLoginAt = &at
	m.users[id] = u
	return nil
}

func (m *memUserRepository) SoftDelete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.IsDeleted() {
		return store.ErrUserNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	m.users[id] = u
	return nil
}

func (m *memUserRepository) Recover(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsDeleted() {
		return models.User{}, store.ErrUserNotFound
	}
	u.DeletedAt = nil
	m.users[id] = u
	u.Password = ""
	return u, nil
}

func (m *memUserRepository) HardDelete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}
