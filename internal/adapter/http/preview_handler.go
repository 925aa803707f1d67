package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	uc "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/preview"
)

type PreviewHandler struct{ uc *uc.Usecase }

func NewPreviewHandler(u *uc.Usecase) *PreviewHandler { return &PreviewHandler{uc: u} }

// PreviewOffer answers GET /offers/preview?principal=&tenure_months=&interest_rate=
func (h *PreviewHandler) PreviewOffer(c echo.Context) error {
	principal, err := strconv.ParseFloat(c.QueryParam("principal"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid principal"})
	}
	tenure, err := strconv.Atoi(c.QueryParam("tenure_months"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tenure_months"})
	}
	rate, err := strconv.ParseFloat(c.QueryParam("interest_rate"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid interest_rate"})
	}

	p, err := h.uc.Preview(c.Request().Context(), principal, rate, tenure)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
