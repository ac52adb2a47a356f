package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type BrandRepo interface {
	UpsertByName(ctx context.Context, tx *gorm.DB, brand *domain.Brand) (*domain.Brand, error)
	GetOrCreateByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Brand, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Brand, error)
}

type brandRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBrandRepo(db *gorm.DB, baseLog *logger.Logger) BrandRepo {
	return &brandRepo{db: db, log: baseLog.With("repo", "BrandRepo")}
}

// UpsertByName inserts the brand or, when the unique name already exists,
// updates its founding year and address fields. The persisted row is
// returned so callers always see the canonical ID.
func (r *brandRepo) UpsertByName(ctx context.Context, tx *gorm.DB, brand *domain.Brand) (*domain.Brand, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}

	err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"year_founded", "street", "city", "state", "postal_code", "country", "updated_at",
			}),
		}).
		Create(brand).Error
	if err != nil {
		return nil, err
	}

	return r.GetByName(ctx, transaction, brand.Name)
}

// GetOrCreateByName ensures a brand row exists for the name without
// touching the fields of an existing row. Used by product writes that carry
// only a brand name.
func (r *brandRepo) GetOrCreateByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Brand, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&domain.Brand{ID: uuid.New(), Name: name}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByName(ctx, transaction, name)
}

// GetByName returns nil, nil when no brand has that name.
func (r *brandRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.Brand, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var brand domain.Brand
	err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}
