package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

// QueryParams mirrors the in-process range filter and paginator, evaluated
// natively by the store. Rows with a NULL release date always pass the date
// window, matching the pipeline semantics.
type QueryParams struct {
	Brands    []string
	DateStart *time.Time
	DateEnd   *time.Time
	Offset    int
	Limit     int
}

type ProductRepo interface {
	Query(ctx context.Context, tx *gorm.DB, params QueryParams) (int64, []*domain.Product, error)
	GetByProductID(ctx context.Context, tx *gorm.DB, productID string) (*domain.Product, error)
	Create(ctx context.Context, tx *gorm.DB, product *domain.Product) (*domain.Product, error)
	Save(ctx context.Context, tx *gorm.DB, product *domain.Product) error
	DeleteByProductID(ctx context.Context, tx *gorm.DB, productID string) (bool, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Query(ctx context.Context, tx *gorm.DB, params QueryParams) (int64, []*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	base := transaction.WithContext(ctx).Model(&domain.Product{})
	if len(params.Brands) > 0 {
		base = base.
			Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.name IN ?", params.Brands)
	}
	if params.DateStart != nil {
		base = base.Where("products.release_date IS NULL OR products.release_date >= ?", *params.DateStart)
	}
	if params.DateEnd != nil {
		base = base.Where("products.release_date IS NULL OR products.release_date <= ?", *params.DateEnd)
	}

	// Reusable session: the same filtered statement backs both the count
	// and the page select.
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var rows []*domain.Product
	err := base.
		Preload("Brand").
		Order("products.product_id ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

// GetByProductID looks up by the external product identifier, not the row
// key. Returns nil, nil when absent.
func (r *productRepo) GetByProductID(ctx context.Context, tx *gorm.DB, productID string) (*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var product domain.Product
	err := transaction.WithContext(ctx).
		Preload("Brand").
		Where("product_id = ?", productID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, product *domain.Product) (*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	// The Brand association is written by BrandRepo.UpsertByName; only the
	// product row is created here.
	if err := transaction.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Save(ctx context.Context, tx *gorm.DB, product *domain.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// DeleteByProductID reports whether a row was actually removed so the
// service can distinguish NotFound. Deletes are hard deletes.
func (r *productRepo) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&domain.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
