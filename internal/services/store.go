package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/pipeline"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

// StoreQuery is the store-backed equivalent of the in-process range filter
// plus pagination, evaluated natively by the database.
type StoreQuery struct {
	Brands     string
	DateStart  string
	DateEnd    string
	PageSize   int
	PageNumber int
}

// StorePage is the step6 response envelope.
type StorePage struct {
	Total      int64                    `json:"total"`
	PageNumber int                      `json:"page_number"`
	PageSize   int                      `json:"page_size"`
	Items      []domain.EnrichedProduct `json:"items"`
}

// BrandInput is the optional brand detail carried on product writes; the
// brand row is upserted by name with these fields.
type BrandInput struct {
	YearFounded *int    `json:"year_founded"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postal_code"`
	Country     *string `json:"country"`
}

// ProductInput is the write body for create and update.
type ProductInput struct {
	ProductID       string      `json:"product_id"` // optional on create; generated when absent
	ProductName     string      `json:"product_name"`
	BrandName       string      `json:"brand_name"`
	CategoryName    *string     `json:"category_name"`
	DescriptionText *string     `json:"description_text"`
	Price           *float64    `json:"price"`
	Currency        *string     `json:"currency"`
	Processor       *string     `json:"processor"`
	Memory          *string     `json:"memory"`
	ReleaseDate     *string     `json:"release_date"`
	AverageRating   *float64    `json:"average_rating"`
	RatingCount     *int        `json:"rating_count"`
	Brand           *BrandInput `json:"brand"`
}

// CatalogStoreService is the persisted query path (step 6) and the CRUD
// write path (step 7). Every write runs in one transaction acquired for the
// request and released on every exit path.
type CatalogStoreService interface {
	Query(ctx context.Context, q StoreQuery) (*StorePage, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, productID string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
}

type catalogStoreService struct {
	db       *gorm.DB
	log      *logger.Logger
	brands   catalog.BrandRepo
	products catalog.ProductRepo
	now      func() time.Time
}

func NewCatalogStoreService(db *gorm.DB, baseLog *logger.Logger, brands catalog.BrandRepo, products catalog.ProductRepo) CatalogStoreService {
	return &catalogStoreService{
		db:       db,
		log:      baseLog.With("service", "CatalogStoreService"),
		brands:   brands,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *catalogStoreService) Query(ctx context.Context, q StoreQuery) (*StorePage, error) {
	start, err := pipeline.ParseBound(q.DateStart)
	if err != nil {
		return nil, apierr.InvalidArgument("invalid_date", err)
	}
	end, err := pipeline.ParseBound(q.DateEnd)
	if err != nil {
		return nil, apierr.InvalidArgument("invalid_date", err)
	}

	params := catalog.QueryParams{
		Brands:    pipeline.SplitBrands(q.Brands),
		DateStart: start,
		DateEnd:   end,
		Offset:    (q.PageNumber - 1) * q.PageSize,
		Limit:     q.PageSize,
	}

	total, rows, err := s.products.Query(ctx, nil, params)
	if err != nil {
		s.log.Error("store query failed", "error", err)
		return nil, apierr.StoreFailure(err)
	}

	year := s.now().Year()
	items := make([]domain.EnrichedProduct, 0, len(rows))
	for _, row := range rows {
		items = append(items, enrichedFromRow(row, year))
	}
	return &StorePage{
		Total:      total,
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
		Items:      items,
	}, nil
}

func (s *catalogStoreService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		productID = uuid.NewString()
	}

	var created *domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.products.GetByProductID(ctx, tx, productID)
		if err != nil {
			return apierr.StoreFailure(err)
		}
		if existing != nil {
			return apierr.New(http.StatusConflict, "product_id_exists",
				fmt.Errorf("product %q already exists", productID))
		}

		brand, err := s.writeBrand(ctx, tx, in)
		if err != nil {
			return err
		}

		product := &domain.Product{ProductID: productID, BrandID: brand.ID}
		applyInput(product, in)

		created, err = s.products.Create(ctx, tx, product)
		if err != nil {
			return apierr.StoreFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAPIError(err)
	}

	s.log.Info("product created", "product_id", created.ProductID)
	return created, nil
}

func (s *catalogStoreService) Update(ctx context.Context, productID string, in ProductInput) (*domain.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var updated *domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.products.GetByProductID(ctx, tx, productID)
		if err != nil {
			return apierr.StoreFailure(err)
		}
		if product == nil {
			return apierr.NotFound(fmt.Errorf("product %q not found", productID))
		}

		brand, err := s.writeBrand(ctx, tx, in)
		if err != nil {
			return err
		}

		product.BrandID = brand.ID
		product.Brand = nil
		applyInput(product, in)

		if err := s.products.Save(ctx, tx, product); err != nil {
			return apierr.StoreFailure(err)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, asAPIError(err)
	}

	s.log.Info("product updated", "product_id", updated.ProductID)
	return updated, nil
}

func (s *catalogStoreService) Delete(ctx context.Context, productID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.products.DeleteByProductID(ctx, tx, productID)
		if err != nil {
			return apierr.StoreFailure(err)
		}
		if !deleted {
			return apierr.NotFound(fmt.Errorf("product %q not found", productID))
		}
		return nil
	})
	if err != nil {
		return asAPIError(err)
	}

	s.log.Info("product deleted", "product_id", productID)
	return nil
}

// writeBrand upserts the brand row for a product write. With brand detail
// in the body the row's fields are replaced; with a bare name an existing
// row is left untouched.
func (s *catalogStoreService) writeBrand(ctx context.Context, tx *gorm.DB, in ProductInput) (*domain.Brand, error) {
	name := strings.TrimSpace(in.BrandName)
	if in.Brand == nil {
		brand, err := s.brands.GetOrCreateByName(ctx, tx, name)
		if err != nil {
			return nil, apierr.StoreFailure(err)
		}
		return brand, nil
	}
	brand, err := s.brands.UpsertByName(ctx, tx, &domain.Brand{
		Name:        name,
		YearFounded: in.Brand.YearFounded,
		Street:      in.Brand.Street,
		City:        in.Brand.City,
		State:       in.Brand.State,
		PostalCode:  in.Brand.PostalCode,
		Country:     in.Brand.Country,
	})
	if err != nil {
		return nil, apierr.StoreFailure(err)
	}
	return brand, nil
}

func validateInput(in ProductInput) error {
	if strings.TrimSpace(in.ProductName) == "" {
		return apierr.InvalidArgument("invalid_request", errors.New("product_name is required"))
	}
	if strings.TrimSpace(in.BrandName) == "" {
		return apierr.InvalidArgument("invalid_request", errors.New("brand_name is required"))
	}
	if in.Price == nil || *in.Price <= 0 {
		return apierr.InvalidArgument("invalid_request", errors.New("price must be greater than zero"))
	}
	if in.AverageRating != nil && (*in.AverageRating < 0 || *in.AverageRating > 5) {
		return apierr.InvalidArgument("invalid_request", errors.New("average_rating must be within [0, 5]"))
	}
	if in.RatingCount != nil && *in.RatingCount < 0 {
		return apierr.InvalidArgument("invalid_request", errors.New("rating_count must be non-negative"))
	}
	if in.ReleaseDate != nil && *in.ReleaseDate != "" {
		if _, err := time.Parse(pipeline.DateLayout, *in.ReleaseDate); err != nil {
			return apierr.InvalidArgument("invalid_request",
				fmt.Errorf("release_date must be a real calendar date: %w", err))
		}
	}
	return nil
}

// applyInput writes the body fields onto the row. PUT semantics: optional
// fields absent from the body become null.
func applyInput(product *domain.Product, in ProductInput) {
	product.ProductName = strings.TrimSpace(in.ProductName)
	product.CategoryName = in.CategoryName
	product.DescriptionText = in.DescriptionText
	product.Price = in.Price
	product.Currency = in.Currency
	product.Processor = in.Processor
	product.Memory = in.Memory
	product.AverageRating = in.AverageRating
	product.RatingCount = in.RatingCount

	product.ReleaseDate = nil
	if in.ReleaseDate != nil && *in.ReleaseDate != "" {
		if t, err := time.Parse(pipeline.DateLayout, *in.ReleaseDate); err == nil {
			product.ReleaseDate = &t
		}
	}
}

// enrichedFromRow gives the persisted query path the same response shape as
// the in-process enrichment stage.
func enrichedFromRow(row *domain.Product, year int) domain.EnrichedProduct {
	p := domain.CanonicalProduct{
		ProductID:       row.ProductID,
		ProductName:     row.ProductName,
		CategoryName:    anyString(row.CategoryName),
		DescriptionText: anyString(row.DescriptionText),
		Price:           anyFloat(row.Price),
		Currency:        anyString(row.Currency),
		Processor:       anyString(row.Processor),
		Memory:          anyString(row.Memory),
		AverageRating:   anyFloat(row.AverageRating),
		RatingCount:     anyInt(row.RatingCount),
	}
	if row.ReleaseDate != nil {
		p.ReleaseDate = row.ReleaseDate.Format(pipeline.DateLayout)
	}

	info := domain.BrandInfo{}
	if row.Brand != nil {
		p.BrandName = row.Brand.Name
		info.Name = row.Brand.Name
		info.YearFounded = anyInt(row.Brand.YearFounded)
		if row.Brand.YearFounded != nil {
			age := year - *row.Brand.YearFounded
			info.CompanyAge = &age
		}
		addr := pipeline.JoinAddress(brandAddressMap(row.Brand))
		info.Address = &addr
	}
	return domain.EnrichedProduct{CanonicalProduct: p, Brand: info}
}

func brandAddressMap(b *domain.Brand) map[string]any {
	m := make(map[string]any, 5)
	if b.Street != nil {
		m["street"] = *b.Street
	}
	if b.City != nil {
		m["city"] = *b.City
	}
	if b.State != nil {
		m["state"] = *b.State
	}
	if b.PostalCode != nil {
		m["postal_code"] = *b.PostalCode
	}
	if b.Country != nil {
		m["country"] = *b.Country
	}
	return m
}

// asAPIError keeps taxonomy errors intact through gorm's transaction
// wrapper and classifies anything else as a store failure.
func asAPIError(err error) error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apierr.StoreFailure(err)
}

func anyString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func anyFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func anyInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
