package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/workflow"
)

type WorkflowHandler struct{ uc *uc.Usecase }

func NewWorkflowHandler(u *uc.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: u} }

// actReq is the optional action payload. Which fields matter depends on
// the action; the executor enforces presence, this layer only checks
// shape.
type actReq struct {
	Offer *struct {
		Amount       float64 `json:"amount"         validate:"required,gt=0,dec2"`
		TenureMonths int     `json:"tenure_months"  validate:"required,gt=0"`
		InterestRate float64 `json:"interest_rate"  validate:"gte=0"`
	} `json:"offer,omitempty" validate:"omitempty"`
	AgentID string `json:"agent_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (h *WorkflowHandler) ListActions(c echo.Context) error {
	caller, err := callerFromHeaders(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	actions, err := h.uc.AvailableActions(c.Request().Context(), c.Param("request_id"), caller)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"actions": actions})
}

func (h *WorkflowHandler) Act(c echo.Context) error {
	caller, err := callerFromHeaders(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var req actReq
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
	}

	in := uc.ActInput{
		RequestID: c.Param("request_id"),
		ActionID:  c.Param("action_id"),
		Actor:     caller,
		AgentID:   req.AgentID,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}
	if req.Offer != nil {
		in.Offer = &uc.OfferTermsInput{
			Amount:       req.Offer.Amount,
			TenureMonths: req.Offer.TenureMonths,
			InterestRate: req.Offer.InterestRate,
		}
	}

	res, err := h.uc.Act(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
