package product

import (
	"context"

	"bakery/internal/domain"
)

type catalogUseCase struct {
	service Service
}

func NewCatalogUseCase(service Service) CatalogUseCase {
	return &catalogUseCase{service: service}
}

func (uc *catalogUseCase) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	found, err := uc.service.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &ListProductsResponse{Products: toDTOs(found)}, nil
}

func (uc *catalogUseCase) SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
	found, notFoundIDs, err := uc.service.GetProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	if notFoundIDs == nil {
		notFoundIDs = []int{}
	}

	return &SearchProductsResponse{
		Products: toDTOs(found),
		NotFound: notFoundIDs,
	}, nil
}

func toDTOs(found []domain.Product) []ProductDTO {
	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ProductDTO{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.StringFixed(2),
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			IsActive:    p.Orderable(),
		})
	}
	return products
}
