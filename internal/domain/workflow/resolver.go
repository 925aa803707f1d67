package workflow

import "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"

// Caller is the explicit identity a core call runs as. There is no
// ambient "current user"; every call threads one of these through.
type Caller struct {
	ID   string
	Role Role
	// Districts is the admin's assigned district set. Empty for
	// customers and agents.
	Districts []string
}

// Context carries the ownership/scope flags evaluated per action.
type Context struct {
	IsOwner         bool
	IsAssignedAgent bool
	DistrictMatch   bool
}

// ContextFor derives the scope flags for a caller against a request.
func ContextFor(req *request.LoanRequest, c Caller) Context {
	ctx := Context{
		IsOwner: c.ID != "" && c.ID == req.CustomerID,
	}
	if req.AssignedAgentID != nil && c.ID != "" && c.ID == *req.AssignedAgentID {
		ctx.IsAssignedAgent = true
	}
	for _, d := range c.Districts {
		if d == req.District {
			ctx.DistrictMatch = true
			break
		}
	}
	return ctx
}

// Permitted evaluates the permission matrix for a single action: the
// role must be in the action's allowed set AND the action's scope
// predicate must hold. Roles never inherit each other's actions.
func Permitted(a Action, role Role, ctx Context) bool {
	if !a.allowsRole(role) {
		return false
	}
	switch a.Scope {
	case ScopeOwner:
		return ctx.IsOwner
	case ScopeDistrict:
		return ctx.DistrictMatch
	case ScopeAssignedAgent:
		return ctx.IsAssignedAgent
	}
	return false
}

// AvailableActions lists the legal actions for (state, role, context)
// in fixed presentation order: primary actions first, then the
// secondary overflow. The result is deterministic for equal inputs.
func AvailableActions(status request.Status, caller Caller, ctx Context) ([]Action, error) {
	if !IsKnown(status) {
		return nil, NewUnknownState(status)
	}
	out := make([]Action, 0, 4)
	for _, id := range presentationOrder {
		if !HasEdge(status, id) {
			continue
		}
		a := actionTable[id]
		if Permitted(a, caller.Role, ctx) {
			out = append(out, a)
		}
	}
	return out, nil
}
