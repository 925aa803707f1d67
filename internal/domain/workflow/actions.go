package workflow

import "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleAgent:
		return true
	}
	return false
}

// Scope is the ownership predicate an action evaluates in addition to
// the role check. Resolution is per-action: holding the admin role
// never satisfies an owner-scoped action, and vice versa.
type Scope string

const (
	// ScopeOwner: caller is the request's customer.
	ScopeOwner Scope = "owner"
	// ScopeDistrict: caller's district set contains the request's district.
	ScopeDistrict Scope = "district"
	// ScopeAssignedAgent: caller is the agent assigned to the request.
	ScopeAssignedAgent Scope = "assigned-agent"
)

// InputKind names the payload an action requires at execution time.
type InputKind string

const (
	InputNone       InputKind = ""
	InputOfferTerms InputKind = "offer-terms"
	InputReason     InputKind = "reason"
	InputAgentID    InputKind = "agent-id"
)

type ActionID string

const (
	ActionStartReview        ActionID = "start-review"
	ActionCreateOffer        ActionID = "create-offer"
	ActionReviseOffer        ActionID = "revise-offer"
	ActionAcceptOffer        ActionID = "accept-offer"
	ActionDeclineOffer       ActionID = "decline-offer"
	ActionAssignAgent        ActionID = "assign-agent"
	ActionStartInspection    ActionID = "start-inspection"
	ActionCompleteInspection ActionID = "complete-inspection"
	ActionFinalize           ActionID = "finalize"
	ActionRejectRequest      ActionID = "reject-request"
	ActionCancelRequest      ActionID = "cancel-request"
)

// Action is one member of the closed action set. Icon and Description
// are presentation metadata with no authorization meaning.
type Action struct {
	ID                   ActionID
	Label                string
	Target               request.Status
	Roles                []Role
	Scope                Scope
	Input                InputKind
	RequiresConfirmation bool
	Primary              bool
	Icon                 string
	Description          string
}

// RequiresInput reports whether the action carries a mandatory payload.
func (a Action) RequiresInput() bool { return a.Input != InputNone }

func (a Action) allowsRole(r Role) bool {
	for _, ar := range a.Roles {
		if ar == r {
			return true
		}
	}
	return false
}

var actionTable = map[ActionID]Action{
	ActionStartReview: {
		ID: ActionStartReview, Label: "Start Review",
		Target: request.StatusUnderReview,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		Primary: true, Icon: "eye",
		Description: "Take the request under review",
	},
	ActionCreateOffer: {
		ID: ActionCreateOffer, Label: "Create Offer",
		Target: request.StatusOfferSent,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		Input: InputOfferTerms, Primary: true, Icon: "file-plus",
		Description: "Send an amount/tenure/rate offer to the customer",
	},
	ActionReviseOffer: {
		ID: ActionReviseOffer, Label: "Revise Offer",
		Target: request.StatusOfferSent,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		Input: InputOfferTerms, Primary: true, Icon: "edit",
		Description: "Replace the current offer with new terms",
	},
	ActionAcceptOffer: {
		ID: ActionAcceptOffer, Label: "Accept Offer",
		Target: request.StatusOfferAccepted,
		Roles:  []Role{RoleCustomer}, Scope: ScopeOwner,
		RequiresConfirmation: true, Primary: true, Icon: "check",
		Description: "Accept the offered terms",
	},
	ActionDeclineOffer: {
		ID: ActionDeclineOffer, Label: "Decline Offer",
		Target: request.StatusOfferDeclined,
		Roles:  []Role{RoleCustomer}, Scope: ScopeOwner,
		RequiresConfirmation: true, Icon: "x",
		Description: "Decline the offered terms",
	},
	ActionAssignAgent: {
		ID: ActionAssignAgent, Label: "Assign Agent",
		Target: request.StatusInspectionScheduled,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		Input: InputAgentID, Primary: true, Icon: "user-plus",
		Description: "Assign a field agent for asset inspection",
	},
	ActionStartInspection: {
		ID: ActionStartInspection, Label: "Start Inspection",
		Target: request.StatusInspectionInProgress,
		Roles:  []Role{RoleAgent}, Scope: ScopeAssignedAgent,
		Primary: true, Icon: "search",
		Description: "Begin the on-site asset inspection",
	},
	ActionCompleteInspection: {
		ID: ActionCompleteInspection, Label: "Complete Inspection",
		Target: request.StatusInspectionCompleted,
		Roles:  []Role{RoleAgent}, Scope: ScopeAssignedAgent,
		Primary: true, Icon: "clipboard-check",
		Description: "Record the inspection outcome",
	},
	ActionFinalize: {
		ID: ActionFinalize, Label: "Finalize Loan",
		Target: request.StatusFinalized,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		RequiresConfirmation: true, Primary: true, Icon: "award",
		Description: "Create the loan from the confirmed offer terms",
	},
	ActionRejectRequest: {
		ID: ActionRejectRequest, Label: "Reject Request",
		Target: request.StatusRejected,
		Roles:  []Role{RoleAdmin}, Scope: ScopeDistrict,
		Input: InputReason, RequiresConfirmation: true, Icon: "slash",
		Description: "Reject the request with a reason",
	},
	ActionCancelRequest: {
		ID: ActionCancelRequest, Label: "Cancel Request",
		Target: request.StatusCancelled,
		Roles:  []Role{RoleCustomer}, Scope: ScopeOwner,
		RequiresConfirmation: true, Icon: "trash",
		Description: "Withdraw the request",
	},
}

// presentationOrder fixes the primary-then-secondary tie-break for
// AvailableActions output. Ordering carries no authorization meaning.
var presentationOrder = []ActionID{
	// primary
	ActionAcceptOffer,
	ActionStartReview,
	ActionCreateOffer,
	ActionReviseOffer,
	ActionAssignAgent,
	ActionStartInspection,
	ActionCompleteInspection,
	ActionFinalize,
	// secondary / overflow
	ActionDeclineOffer,
	ActionRejectRequest,
	ActionCancelRequest,
}

// Lookup resolves an action id against the closed set. Unknown ids are
// a validation-time error for callers, never a silent no-op.
func Lookup(id ActionID) (Action, bool) {
	a, ok := actionTable[id]
	return a, ok
}
