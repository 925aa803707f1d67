package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/request"
)

type RequestHandler struct{ uc *uc.Usecase }

func NewRequestHandler(u *uc.Usecase) *RequestHandler { return &RequestHandler{uc: u} }

type submitRequestReq struct {
	CustomerID      string  `json:"customer_id"      validate:"required,hex32"`
	District        string  `json:"district"         validate:"required"`
	RequestedAmount float64 `json:"requested_amount" validate:"required,gt=0,dec2"`
}

func (h *RequestHandler) SubmitRequest(c echo.Context) error {
	var req submitRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), uc.SubmitInput{
		CustomerID:      req.CustomerID,
		District:        req.District,
		RequestedAmount: req.RequestedAmount,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequestHandler) GetHistory(c echo.Context) error {
	entries, err := h.uc.History(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"history": entries})
}
