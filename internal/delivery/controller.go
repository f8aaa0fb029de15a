package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	area   *Area
	logger *zap.Logger
}

func NewController(area *Area, logger *zap.Logger) *Controller {
	return &Controller{
		area:   area,
		logger: logger,
	}
}

type CheckZipResponse struct {
	Zip     string `json:"zip"`
	Allowed bool   `json:"allowed"`
}

func (c *Controller) HandleCheckZip(w http.ResponseWriter, r *http.Request) {
	zip := chi.URLParam(r, "zip")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CheckZipResponse{Zip: zip, Allowed: c.area.Allows(zip)}); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
