// Package staff manages the shop's staff accounts. Shift controls on the API
// are restricted to authenticated staff.
package staff

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound      = errors.New("staff: account not found")
	ErrAlreadyExists = errors.New("staff: account already exists")
)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (Staff, error)
	Get(ctx context.Context, username string) (Staff, error)
	Delete(ctx context.Context, username string) error
	Login(ctx context.Context, username, password string) (Staff, error)
}

type service struct {
	repo Repository
}

func (s *service) Get(ctx context.Context, username string) (Staff, error) {
	return s.repo.Get(ctx, username)
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (Staff, error) {
	if req.Username == "" {
		return Staff{}, errors.New("invalid username")
	}
	if req.PlainTextPassword == "" {
		return Staff{}, errors.New("invalid password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.PlainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return Staff{}, err
	}
	member := &Staff{
		Username:       req.Username,
		HashedPassword: string(hash),
		IsManager:      req.IsManager,
		Created:        time.Now(),
	}
	err = s.repo.Create(ctx, member)
	if err != nil {
		return Staff{}, err
	}
	return *member, nil
}

func (s *service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

func (s *service) Login(ctx context.Context, username, password string) (Staff, error) {
	m, err := s.repo.Get(ctx, username)
	if err != nil {
		return Staff{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(m.HashedPassword), []byte(password))
	if err != nil {
		return Staff{}, err
	}

	return m, nil
}

type Repository interface {
	Create(ctx context.Context, member *Staff) error
	Get(ctx context.Context, username string) (Staff, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]Staff, error)
}

// NewMemoryRepo returns a process-resident account store. Accounts live for
// the session only.
func NewMemoryRepo() *memoryRepo {
	return &memoryRepo{accounts: make(map[string]Staff)}
}

type memoryRepo struct {
	mu       sync.RWMutex
	accounts map[string]Staff
}

func (r *memoryRepo) Create(ctx context.Context, member *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[member.Username]; ok {
		return errors.WithStack(ErrAlreadyExists)
	}
	r.accounts[member.Username] = *member
	return nil
}

func (r *memoryRepo) Get(ctx context.Context, username string) (Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.accounts[username]
	if !ok {
		return Staff{}, errors.WithStack(ErrNotFound)
	}
	return m, nil
}

func (r *memoryRepo) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; !ok {
		return errors.WithStack(ErrNotFound)
	}
	delete(r.accounts, username)
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := make([]Staff, 0, len(r.accounts))
	for _, m := range r.accounts {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Username < members[j].Username })
	return members, nil
}
