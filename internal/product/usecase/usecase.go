package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/product"
	"github.com/samaansync/inventory-service/internal/product/dto"
	"github.com/samaansync/inventory-service/pkg/cache"
	"github.com/samaansync/inventory-service/pkg/logger"
	"github.com/samaansync/inventory-service/pkg/search"
	"go.uber.org/zap"
)

const (
	productIndex    = "products"
	productCacheKey = "products:all"
	productCacheTTL = 5 * time.Minute
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewProductUseCase accepts nil cache and es clients; both concerns degrade
// to direct repository access.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, productCacheKey).Result()
		if err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(products); err == nil {
			uc.cache.Client.Set(ctx, productCacheKey, payload, productCacheTTL)
		}
	}

	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, productID)
}

func (uc *productUseCase) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", query),
					"fields": []string{"name^3", "product_id", "category_id"},
				},
			},
		}

		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			products := make([]model.Product, 0, len(res.Hits.Hits))
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					products = append(products, p)
				}
			}
			return products, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	return uc.repo.SearchByName(ctx, query)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	p := &model.Product{
		ProductID:  input.ProductID,
		Name:       input.Name,
		CategoryID: input.CategoryID,
		IsActive:   isActive,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	p, err := uc.repo.Update(ctx, &model.Product{
		ProductID:  input.ProductID,
		Name:       input.Name,
		CategoryID: input.CategoryID,
		IsActive:   isActive,
	})
	if err != nil || p == nil {
		return p, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, productCacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"product_id": { "type": "keyword" },
				"name": { "type": "text" },
				"category_id": { "type": "keyword" },
				"is_active": { "type": "keyword" },
				"updated_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ProductID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("product_id", p.ProductID), zap.Error(err))
	}
}
