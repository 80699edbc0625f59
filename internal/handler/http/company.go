package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (c *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	comp, err := c.companyService.Get(r.Context())
	if err != nil {
		slog.Error("Get company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, comp)
}

// GetSettings implements CompanyHandler.
func (c *CompanyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.companyService.GetSettings(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements CompanyHandler.
func (c *CompanyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := c.companyService.UpdateSettings(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll settings updated", settings)
}
