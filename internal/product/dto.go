package product

type SearchProductsRequest struct {
	ProductIDs []int `json:"productIds"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
	NotFound []int        `json:"notFound"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

type ProductDTO struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
}
