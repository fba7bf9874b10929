// Package memory holds process-local repositories used when no database is
// configured. Data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	"github.com/ahmedhedefa/cashier-ca-web/internal/models"
	"github.com/ahmedhedefa/cashier-ca-web/internal/utils/mapping"
)

// TillRepository keeps till profiles in a map, stored in their persisted
// model form so reads go through the same mapping as the database.
type TillRepository struct {
	mu    sync.RWMutex
	tills map[string]models.Till
}

// NewTillRepository creates an empty in-memory till repository.
func NewTillRepository() *TillRepository {
	return &TillRepository{tills: make(map[string]models.Till)}
}

var _ portsrepo.TillRepositoryFacade = (*TillRepository)(nil)

// NewRepositoryProvider wires the in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TillRepo: NewTillRepository(),
	}
}

func cloneTill(m models.Till) models.Till {
	m.DisabledDenominations = append([]string{}, m.DisabledDenominations...)
	return m
}

func (r *TillRepository) SaveTill(_ context.Context, till domain.Till) error {
	m := mapping.ToModelTill(till)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tills[m.TillID]; exists {
		return fmt.Errorf("%w: till with ID %s already exists", apperrors.ErrDuplicate, m.TillID)
	}
	for _, existing := range r.tills {
		if strings.EqualFold(existing.Name, m.Name) {
			return fmt.Errorf("%w: till named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
	}
	r.tills[m.TillID] = cloneTill(m)
	return nil
}

func (r *TillRepository) FindTillByID(_ context.Context, tillID string) (*domain.Till, error) {
	r.mu.RLock()
	m, ok := r.tills[tillID]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	d := mapping.ToDomainTill(cloneTill(m))
	return &d, nil
}

func (r *TillRepository) ListTills(_ context.Context) ([]domain.Till, error) {
	r.mu.RLock()
	ms := make([]models.Till, 0, len(r.tills))
	for _, m := range r.tills {
		ms = append(ms, cloneTill(m))
	}
	r.mu.RUnlock()

	sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	return mapping.ToDomainTillSlice(ms), nil
}

// UpdateTill applies the write only when the stored version directly precedes
// the incoming one.
func (r *TillRepository) UpdateTill(_ context.Context, till domain.Till) error {
	m := mapping.ToModelTill(till)

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tills[m.TillID]
	if !ok || stored.Version != m.Version-1 {
		return fmt.Errorf("%w: till %s was removed or changed concurrently", apperrors.ErrNotFound, m.TillID)
	}

	stored.DisabledDenominations = append([]string{}, m.DisabledDenominations...)
	stored.LastUpdatedAt = m.LastUpdatedAt
	stored.LastUpdatedBy = m.LastUpdatedBy
	stored.Version = m.Version
	r.tills[m.TillID] = stored
	return nil
}

func (r *TillRepository) DeleteTill(_ context.Context, tillID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tills[tillID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tills, tillID)
	return nil
}
