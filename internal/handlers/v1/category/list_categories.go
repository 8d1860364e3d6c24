package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID   int64  `json:"id" doc:"Generated category id"`
	Name string `json:"name" doc:"Unique category name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := make([]Category, len(categories))
	for i, c := range categories {
		resp[i] = Category{ID: c.ID, Name: c.Name}
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
