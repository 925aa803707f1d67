package workflow

import "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"

// edges declares, per lifecycle state, which actions are legal out of
// it. Terminal states keep an empty (non-nil) entry so they stay
// members of the registry while offering nothing.
var edges = map[request.Status][]ActionID{
	request.StatusSubmitted: {
		ActionStartReview,
		ActionRejectRequest,
		ActionCancelRequest,
	},
	request.StatusUnderReview: {
		ActionCreateOffer,
		ActionRejectRequest,
		ActionCancelRequest,
	},
	request.StatusOfferSent: {
		ActionAcceptOffer,
		ActionDeclineOffer,
		ActionReviseOffer,
		ActionCancelRequest,
	},
	request.StatusOfferDeclined: {
		ActionReviseOffer,
		ActionRejectRequest,
	},
	request.StatusOfferAccepted: {
		ActionAssignAgent,
		ActionFinalize,
	},
	request.StatusInspectionScheduled: {
		ActionStartInspection,
	},
	request.StatusInspectionInProgress: {
		ActionCompleteInspection,
	},
	request.StatusInspectionCompleted: {
		ActionFinalize,
		ActionRejectRequest,
	},
	request.StatusFinalized: {},
	request.StatusRejected:  {},
	request.StatusCancelled: {},
}

// States returns the registry's declared state set.
func States() []request.Status {
	out := make([]request.Status, 0, len(edges))
	for s := range edges {
		out = append(out, s)
	}
	return out
}

func IsKnown(s request.Status) bool {
	_, ok := edges[s]
	return ok
}

func IsTerminal(s request.Status) bool {
	ids, ok := edges[s]
	return ok && len(ids) == 0
}

// HasEdge reports whether the action is a declared edge out of the state.
func HasEdge(from request.Status, id ActionID) bool {
	for _, e := range edges[from] {
		if e == id {
			return true
		}
	}
	return false
}
