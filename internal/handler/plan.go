package handler

import (
	"encoding/json"
	"net/http"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"
	"github.com/devloperakramul/aka-loan-amortization/internal/service"
	"github.com/devloperakramul/aka-loan-amortization/pkg/response"

	"github.com/go-playground/validator/v10"
)

type PlanHandler struct {
	service   *service.PlanService
	validator *validator.Validate
}

func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{
		service:   service,
		validator: validator.New(),
	}
}

// ComputePlan computes a payoff schedule over the stored loan set.
func (h *PlanHandler) ComputePlan(w http.ResponseWriter, r *http.Request) {
	var request domain.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	plan, err := h.service.ComputePlan(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, plan)
}

// PreviewPlan computes a payoff schedule over loans supplied in the request
// body without persisting anything.
func (h *PlanHandler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	var request domain.PlanPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	plan, err := h.service.PreviewPlan(r.Context(), &request)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, plan)
}
