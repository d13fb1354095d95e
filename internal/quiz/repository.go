package quiz

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	Create(ctx context.Context, c *Certificate) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*Certificate, error)
	List(ctx context.Context, limit int) ([]*Certificate, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, c *Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *certificateRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*Certificate, error) {
	var c Certificate
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("completed_at DESC").
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *certificateRepository) List(ctx context.Context, limit int) ([]*Certificate, error) {
	var certs []*Certificate
	if err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

type memoryRepository struct {
	mu    sync.RWMutex
	certs []*Certificate
}

// NewMemoryRepository keeps certificates for the lifetime of the process.
// Used when no database is configured.
func NewMemoryRepository() CertificateRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, c *Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	r.certs = append(r.certs, &cp)
	return nil
}

func (r *memoryRepository) GetBySessionID(_ context.Context, sessionID uuid.UUID) (*Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.certs) - 1; i >= 0; i-- {
		if r.certs[i].SessionID == sessionID {
			cp := *r.certs[i]
			return &cp, nil
		}
	}
	return nil, ErrCertificateNotFound
}

func (r *memoryRepository) List(_ context.Context, limit int) ([]*Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Certificate, 0, len(r.certs))
	for _, c := range r.certs {
		cp := *c
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
