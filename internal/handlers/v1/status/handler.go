package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type StatusOutput struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"ok when the database answers"`
	}
}

// Handler reports whether the server can reach its database.
type Handler struct {
	Storage pinger
}

func NewHandler(p pinger) *Handler {
	return &Handler{Storage: p}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	if err := h.Storage.Ping(ctx); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "database unavailable", err)
	}

	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
