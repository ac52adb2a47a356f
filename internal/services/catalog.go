package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/pipeline"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

// SourceLoader is the boundary the pipeline service pulls raw records
// through. *source.Loader satisfies it; tests substitute stubs.
type SourceLoader interface {
	Products(ctx context.Context) ([]any, error)
	Brands(ctx context.Context) ([]domain.BrandRecord, error)
}

// CatalogService composes the pure pipeline stages over freshly loaded
// source data. Each method is one endpoint's prefix of the pipeline;
// nothing is cached between calls.
type CatalogService interface {
	CleanProducts(ctx context.Context) ([]domain.CanonicalProduct, error)
	FilteredProducts(ctx context.Context, opts pipeline.RangeOptions) ([]domain.CanonicalProduct, error)
	PagedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.CanonicalProduct, error)
	EnrichedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.EnrichedProduct, error)
}

type catalogService struct {
	log    *logger.Logger
	loader SourceLoader
	now    func() time.Time
}

func NewCatalogService(loader SourceLoader, baseLog *logger.Logger) CatalogService {
	return &catalogService{
		log:    baseLog.With("service", "CatalogService"),
		loader: loader,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *catalogService) CleanProducts(ctx context.Context) ([]domain.CanonicalProduct, error) {
	raw, err := s.loader.Products(ctx)
	if err != nil {
		return nil, err
	}
	cleaned := pipeline.Clean(raw)
	s.log.Debug("cleaned source records", "received", len(raw), "kept", len(cleaned))
	return cleaned, nil
}

func (s *catalogService) FilteredProducts(ctx context.Context, opts pipeline.RangeOptions) ([]domain.CanonicalProduct, error) {
	cleaned, err := s.CleanProducts(ctx)
	if err != nil {
		return nil, err
	}
	return s.applyRange(cleaned, opts)
}

func (s *catalogService) PagedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.CanonicalProduct, error) {
	filtered, err := s.FilteredProducts(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.Paginate(filtered, pageSize, pageNumber), nil
}

// EnrichedProducts runs the full pipeline. The product and brand sources
// are independent, so they are fetched concurrently.
func (s *catalogService) EnrichedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.EnrichedProduct, error) {
	var (
		raw    []any
		brands []domain.BrandRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.loader.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = s.loader.Brands(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered, err := s.applyRange(pipeline.Clean(raw), opts)
	if err != nil {
		return nil, err
	}
	page := pipeline.Paginate(filtered, pageSize, pageNumber)
	return pipeline.Enrich(page, brands, s.now()), nil
}

func (s *catalogService) applyRange(products []domain.CanonicalProduct, opts pipeline.RangeOptions) ([]domain.CanonicalProduct, error) {
	filtered, err := pipeline.FilterByRange(products, opts)
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidDate) {
			return nil, apierr.InvalidArgument("invalid_date", err)
		}
		return nil, err
	}
	return filtered, nil
}
