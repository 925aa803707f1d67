package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/uow"
	domainWorkflow "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/workflow"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/testutil/historymock"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/testutil/requestmock"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/testutil/uowmock"
	uc "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/workflow"
)

var (
	ownerID  = strings.Repeat("c", 32)
	reqHexID = strings.Repeat("a", 32)
)

func offerSentRequest() *requestDomain.LoanRequest {
	r := &requestDomain.LoanRequest{
		ID:            5,
		RequestID:     reqHexID,
		RequestNumber: "LR-TEST000001",
		CustomerID:    ownerID,
		District:      "bandung",
		Status:        requestDomain.StatusOfferSent,
		Version:       3,
	}
	r.SetOffer(45_000, 6, 12, time.Now().UTC())
	return r
}

func newWorkflowHandler(stored *requestDomain.LoanRequest, hist *historymock.Repo) *WorkflowHandler {
	repo := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			cp := *stored
			return &cp, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Requests: repo, History: hist})
	return NewWorkflowHandler(uc.NewUsecase(repo, tx))
}

func callerHeaders(req *stdhttp.Request, id, role, districts string) {
	req.Header.Set("Ax-Caller-Id", id)
	req.Header.Set("Ax-Caller-Role", role)
	if districts != "" {
		req.Header.Set("Ax-Caller-Districts", districts)
	}
}

func actCtx(e *echo.Echo, req *stdhttp.Request, rec *httptest.ResponseRecorder, actionID string) echo.Context {
	c := e.NewContext(req, rec)
	c.SetPath("/requests/:request_id/actions/:action_id")
	c.SetParamNames("request_id", "action_id")
	c.SetParamValues(reqHexID, actionID)
	return c
}

func TestListActions_OwnerAtOfferSent(t *testing.T) {
	e := newEchoWithValidator()
	h := newWorkflowHandler(offerSentRequest(), &historymock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/requests/"+reqHexID+"/actions", nil)
	callerHeaders(req, ownerID, "customer", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/requests/:request_id/actions")
	c.SetParamNames("request_id")
	c.SetParamValues(reqHexID)

	if err := h.ListActions(c); err != nil {
		t.Fatalf("ListActions error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Actions []uc.ActionDTO `json:"actions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	ids := make([]string, 0, len(body.Actions))
	for _, a := range body.Actions {
		ids = append(ids, a.ID)
	}
	want := []string{"accept-offer", "decline-offer", "cancel-request"}
	if len(ids) != len(want) {
		t.Fatalf("action ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("action ids = %v, want %v", ids, want)
		}
	}
}

func TestListActions_MissingRoleHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := newWorkflowHandler(offerSentRequest(), &historymock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/requests/"+reqHexID+"/actions", nil)
	req.Header.Set("Ax-Caller-Id", ownerID) // role absent
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/requests/:request_id/actions")
	c.SetParamNames("request_id")
	c.SetParamValues(reqHexID)

	if err := h.ListActions(c); err != nil {
		t.Fatalf("ListActions error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAct_AcceptOffer_Success(t *testing.T) {
	e := newEchoWithValidator()
	hist := &historymock.Repo{}
	h := newWorkflowHandler(offerSentRequest(), hist)

	req := httptest.NewRequest(stdhttp.MethodPost, "/requests/"+reqHexID+"/actions/accept-offer", nil)
	callerHeaders(req, ownerID, "customer", "")
	rec := httptest.NewRecorder()
	c := actCtx(e, req, rec, "accept-offer")

	if err := h.Act(c); err != nil {
		t.Fatalf("Act error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var res uc.ActResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if res.Request == nil || res.Request.Status != string(requestDomain.StatusOfferAccepted) {
		t.Fatalf("unexpected result: %+v", res.Request)
	}
	if res.History == nil || res.History.Action != "accept-offer" {
		t.Fatalf("unexpected history entry: %+v", res.History)
	}
	if len(hist.Entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(hist.Entries))
	}
}

func TestAct_NonOwner_Forbidden(t *testing.T) {
	e := newEchoWithValidator()
	hist := &historymock.Repo{}
	h := newWorkflowHandler(offerSentRequest(), hist)

	req := httptest.NewRequest(stdhttp.MethodPost, "/requests/"+reqHexID+"/actions/accept-offer", nil)
	callerHeaders(req, strings.Repeat("e", 32), "customer", "") // someone else's request
	rec := httptest.NewRecorder()
	c := actCtx(e, req, rec, "accept-offer")

	if err := h.Act(c); err != nil {
		t.Fatalf("Act error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403, body=%s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Kind != string(domainWorkflow.KindAuthorization) {
		t.Fatalf("kind = %q, want authorization", er.Kind)
	}
	if len(hist.Entries) != 0 {
		t.Fatalf("denied action must not leave history, got %+v", hist.Entries)
	}
}

func TestAct_InvalidTransition_Conflict(t *testing.T) {
	e := newEchoWithValidator()
	h := newWorkflowHandler(offerSentRequest(), &historymock.Repo{})

	// create-offer is not an edge of OFFER_SENT
	body := mustJSON(map[string]any{
		"offer": map[string]any{"amount": 50000, "tenure_months": 12, "interest_rate": 10},
	})
	req := httptest.NewRequest(stdhttp.MethodPost, "/requests/"+reqHexID+"/actions/create-offer", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	callerHeaders(req, strings.Repeat("d", 32), "admin", "")
	rec := httptest.NewRecorder()
	c := actCtx(e, req, rec, "create-offer")

	if err := h.Act(c); err != nil {
		t.Fatalf("Act error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body=%s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.CurrentState != string(requestDomain.StatusOfferSent) {
		t.Fatalf("current_state = %q, want OFFER_SENT", er.CurrentState)
	}
}

func TestAct_StaleVersion_Conflict(t *testing.T) {
	e := newEchoWithValidator()
	stored := offerSentRequest()
	repo := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			cp := *stored
			return &cp, nil
		},
		SaveVersionedFn: func(ctx context.Context, r *requestDomain.LoanRequest) error {
			return requestDomain.ErrVersionConflict
		},
	}
	hist := &historymock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Requests: repo, History: hist})
	h := NewWorkflowHandler(uc.NewUsecase(repo, tx))

	req := httptest.NewRequest(stdhttp.MethodPost, "/requests/"+reqHexID+"/actions/accept-offer", nil)
	callerHeaders(req, ownerID, "customer", "")
	rec := httptest.NewRecorder()
	c := actCtx(e, req, rec, "accept-offer")

	if err := h.Act(c); err != nil {
		t.Fatalf("Act error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409, body=%s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Kind != string(domainWorkflow.KindStaleState) {
		t.Fatalf("kind = %q, want stale_state", er.Kind)
	}
}

func TestAct_OfferPayloadValidation(t *testing.T) {
	e := newEchoWithValidator()
	h := newWorkflowHandler(offerSentRequest(), &historymock.Repo{})

	// three decimal places in amount must be rejected before the core runs
	body := mustJSON(map[string]any{
		"offer": map[string]any{"amount": 50000.123, "tenure_months": 12, "interest_rate": 10},
	})
	req := httptest.NewRequest(stdhttp.MethodPost, "/requests/"+reqHexID+"/actions/revise-offer", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	callerHeaders(req, strings.Repeat("d", 32), "admin", "")
	rec := httptest.NewRecorder()
	c := actCtx(e, req, rec, "revise-offer")

	if err := h.Act(c); err != nil {
		t.Fatalf("Act error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body=%s", rec.Code, rec.Body.String())
	}
}
