package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/fleet-demand-ops/internal/engine"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

func newDemandFixture(t *testing.T) (*DemandHandler, *store.Store, models.User) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.New()
	rec := recorder.New(st, nil, log)
	eng := engine.New(st, rec, log)

	admin, err := st.AddUser(models.User{
		Name:   "Admin User",
		Email:  "admin@example.com",
		Role:   models.RoleAdmin,
		Sector: models.SectorLogistics,
	})
	require.NoError(t, err)

	return NewDemandHandler(eng, st), st, admin
}

func postJSON(t *testing.T, path string, payload interface{}, user models.User) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := withClaims(httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body)), user)
	return httptest.NewRecorder(), req
}

func TestListDemandsFiltersBySector(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	st.InsertDemand(models.DemandEntry{ClientName: "A", CurrentSector: models.SectorLogistics})
	st.InsertDemand(models.DemandEntry{ClientName: "B", CurrentSector: models.SectorWorkshop})

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/demands?sector=WORKSHOP", nil), admin)
	w := httptest.NewRecorder()
	handler.ListDemands(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.DemandEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ClientName)
}

func TestListDemandsDefaultsToHomeSector(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	st.InsertDemand(models.DemandEntry{ClientName: "A", CurrentSector: models.SectorLogistics})

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/demands", nil), admin)
	w := httptest.NewRecorder()
	handler.ListDemands(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.DemandEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestCreateDemandEndToEnd(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	st.AddVehicle("PCX 125", "AB12CDE")

	payload := map[string]interface{}{
		"sector":       "LOGISTICS",
		"clientName":   "MARTINS",
		"proclaim":     "620001",
		"postcode":     "N7",
		"registration": "AB12CDE",
		"licenceType":  "FULL",
		"swap":         "NO",
	}
	w, req := postJSON(t, "/api/demands/create", payload, admin)
	handler.CreateDemand(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.DemandEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "PCX 125", got.Model)
	assert.Equal(t, "620001", got.ReferenceID)
}

func TestCreateDemandErrorMapping(t *testing.T) {
	handler, _, admin := newDemandFixture(t)

	payload := map[string]interface{}{
		"sector":       "LOGISTICS",
		"clientName":   "MARTINS",
		"proclaim":     "620001",
		"postcode":     "N7",
		"registration": "NO12SUCH",
	}
	w, req := postJSON(t, "/api/demands/create", payload, admin)
	handler.CreateDemand(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLockConflictReturns409(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	d := st.InsertDemand(models.DemandEntry{CurrentSector: models.SectorLogistics, LockedBy: "Someone Else"})

	payload := map[string]interface{}{"sector": "LOGISTICS", "id": d.ID}
	w, req := postJSON(t, "/api/demands/lock", payload, admin)
	handler.LockDemand(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuickEditEndpoint(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	d := st.InsertDemand(models.DemandEntry{CurrentSector: models.SectorWorkshop})

	payload := map[string]interface{}{
		"sector": "WORKSHOP",
		"id":     d.ID,
		"field":  "workshopStatus",
		"value":  "RESERVED",
	}
	w, req := postJSON(t, "/api/demands/quickedit", payload, admin)
	handler.QuickEdit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	got, _ := st.DemandByID(d.ID)
	assert.Equal(t, models.WorkshopReserved, got.WorkshopStatus)
}

func TestHandoverEndpoints(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	d := st.InsertDemand(models.DemandEntry{ClientName: "A", CurrentSector: models.SectorLogistics})

	w, req := postJSON(t, "/api/demands/handover/initiate", map[string]interface{}{"id": d.ID}, admin)
	handler.InitiateHandover(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var pending engine.PendingAction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, models.SectorWorkshop, pending.Target)

	w, req = postJSON(t, "/api/demands/handover/confirm", map[string]interface{}{"id": d.ID, "target": pending.Target}, admin)
	handler.ConfirmHandover(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, _ := st.DemandByID(d.ID)
	assert.Equal(t, models.SectorWorkshop, got.CurrentSector)
}

func TestCompletionEndpointRequiresReservation(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	d := st.InsertDemand(models.DemandEntry{CurrentSector: models.SectorHirefleet})

	w, req := postJSON(t, "/api/demands/complete/initiate", map[string]interface{}{"id": d.ID}, admin)
	handler.InitiateCompletion(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDemandAuditFilter(t *testing.T) {
	handler, st, admin := newDemandFixture(t)
	st.AppendAudit(models.AuditLog{DemandID: 1, User: "X", Action: models.ActionCreate})
	st.AppendAudit(models.AuditLog{DemandID: 2, User: "X", Action: models.ActionUpdate})

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/demands/audit?id=1", nil), admin)
	w := httptest.NewRecorder()
	handler.DemandAudit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.AuditLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].DemandID)
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	handler, _, _ := newDemandFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/demands", nil)
	w := httptest.NewRecorder()
	handler.ListDemands(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
