package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	agentDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"
	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	domainWorkflow "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/workflow"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/emi"
)

// writeDomainError maps core errors onto HTTP. Authorization and
// invalid-transition responses signal a stale client view; the UI is
// expected to re-fetch available actions rather than hard-fail.
func writeDomainError(c echo.Context, err error) error {
	var wfErr *domainWorkflow.Error
	if errors.As(err, &wfErr) {
		resp := ErrorResponse{
			Error:        wfErr.Message,
			Kind:         string(wfErr.Kind),
			CurrentState: string(wfErr.CurrentState),
			TargetState:  string(wfErr.TargetState),
		}
		switch wfErr.Kind {
		case domainWorkflow.KindAuthorization:
			return c.JSON(http.StatusForbidden, resp)
		case domainWorkflow.KindInvalidTransition, domainWorkflow.KindStaleState:
			return c.JSON(http.StatusConflict, resp)
		case domainWorkflow.KindValidation, domainWorkflow.KindInvalidOfferTerms:
			return c.JSON(http.StatusUnprocessableEntity, resp)
		case domainWorkflow.KindUnknownState:
			return c.JSON(http.StatusInternalServerError, resp)
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}
	switch {
	case errors.Is(err, requestDomain.ErrNotFound), errors.Is(err, agentDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, emi.ErrInvalidTerms):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(),
			Kind:  string(domainWorkflow.KindInvalidOfferTerms),
		})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
