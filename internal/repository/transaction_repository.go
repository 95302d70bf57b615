package repository

import (
	"sort"
	"sync"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// TransactionRepository stores payment records. Create must be an atomic
// insert-if-absent on the transaction ID; ListByOwner recomputes a fresh,
// newest-first snapshot on every call.
type TransactionRepository interface {
	Create(t *models.TransactionRecord) error
	GetByID(id string) (*models.TransactionRecord, error)
	ListByOwner(email string) ([]models.TransactionRecord, error)
}

// MemoryTransactionRepository keeps records in insertion order plus an ID
// index, both behind one mutex. Records are retained for the process lifetime.
type MemoryTransactionRepository struct {
	mu      sync.RWMutex
	byID    map[string]int
	records []models.TransactionRecord
}

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{byID: make(map[string]int)}
}

func (r *MemoryTransactionRepository) Create(t *models.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[t.ID]; ok {
		return apperrors.ErrDuplicateTransactionID
	}
	r.records = append(r.records, *t)
	r.byID[t.ID] = len(r.records) - 1
	return nil
}

func (r *MemoryTransactionRepository) GetByID(id string) (*models.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	record := r.records[idx]
	return &record, nil
}

// ListByOwner returns the owner's records ordered by timestamp descending.
// The stable sort over the insertion-ordered slice breaks timestamp ties by
// insertion order.
func (r *MemoryTransactionRepository) ListByOwner(email string) ([]models.TransactionRecord, error) {
	r.mu.RLock()
	out := make([]models.TransactionRecord, 0)
	for _, record := range r.records {
		if record.InitiatedBy == email {
			out = append(out, record)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
