package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	domainWorkflow "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/workflow"
)

// Caller identity headers. Authentication itself is owned by the outer
// platform; this layer only requires the identity to be present and
// well-formed, and threads it explicitly into every core call.
const (
	headerCallerID        = "Ax-Caller-Id"
	headerCallerRole      = "Ax-Caller-Role"
	headerCallerDistricts = "Ax-Caller-Districts"
)

func callerFromHeaders(c echo.Context) (domainWorkflow.Caller, error) {
	id := strings.TrimSpace(c.Request().Header.Get(headerCallerID))
	if id == "" {
		return domainWorkflow.Caller{}, errors.New("missing " + headerCallerID)
	}
	role := domainWorkflow.Role(strings.ToLower(strings.TrimSpace(c.Request().Header.Get(headerCallerRole))))
	if !domainWorkflow.ValidRole(role) {
		return domainWorkflow.Caller{}, errors.New("invalid " + headerCallerRole)
	}

	var districts []string
	if raw := c.Request().Header.Get(headerCallerDistricts); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				districts = append(districts, d)
			}
		}
	}
	return domainWorkflow.Caller{ID: id, Role: role, Districts: districts}, nil
}
