package repository

import (
	"sync"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// PrincipalRepository is the credential store. Create must be an atomic
// insert-if-absent on the email key: under concurrent creates for the same
// email exactly one caller wins, the rest observe ErrDuplicateEmail.
type PrincipalRepository interface {
	Create(p *models.Principal) error
	GetByEmail(email string) (*models.Principal, error)
}

// MemoryPrincipalRepository keeps principals in a mutex-guarded map. This is
// the default profile: records live for the process lifetime only, keyed by
// the exact (case-sensitive) email.
type MemoryPrincipalRepository struct {
	mu         sync.RWMutex
	principals map[string]models.Principal
}

func NewMemoryPrincipalRepository() *MemoryPrincipalRepository {
	return &MemoryPrincipalRepository{principals: make(map[string]models.Principal)}
}

// Create inserts the principal. The existence check and the insert run under
// one lock, so there is no window where two creates both observe "absent".
func (r *MemoryPrincipalRepository) Create(p *models.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.principals[p.Email]; ok {
		return apperrors.ErrDuplicateEmail
	}
	r.principals[p.Email] = *p
	return nil
}

// GetByEmail returns a copy of the stored principal, never the internal value.
func (r *MemoryPrincipalRepository) GetByEmail(email string) (*models.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.principals[email]
	if !ok {
		return nil, apperrors.ErrPrincipalNotFound
	}
	return &p, nil
}
