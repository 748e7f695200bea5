package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ahorro/internal/core"
	"ahorro/internal/services"
)

type fakeLedger struct {
	users   []core.User
	montos  []core.Amount
	savings []core.Saving
	initErr error
}

func (f *fakeLedger) CreateUser(ctx context.Context, name, color string) (core.User, error) {
	u := core.User{ID: int64(len(f.users) + 1), Name: name, Color: color}
	if err := u.Validate(); err != nil {
		return core.User{}, err
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeLedger) User(ctx context.Context, id int64) (core.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return core.User{}, services.ErrNotFound
}

func (f *fakeLedger) Users(ctx context.Context) ([]core.User, error) {
	return f.users, nil
}

func (f *fakeLedger) CreateAmount(ctx context.Context, userID int64, value core.Money) (core.Amount, error) {
	a := core.Amount{ID: int64(len(f.montos) + 1), UserID: userID, Value: value}
	if err := a.Validate(); err != nil {
		return core.Amount{}, err
	}
	f.montos = append(f.montos, a)
	return a, nil
}

func (f *fakeLedger) Amounts(ctx context.Context, userID int64) ([]core.Amount, error) {
	if !core.ValidUserID(userID) {
		return nil, core.ErrInvalidUser
	}
	var out []core.Amount
	for _, m := range f.montos {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeLedger) SelectAmount(ctx context.Context, userID, id int64) (core.Amount, error) {
	if !core.ValidUserID(userID) {
		return core.Amount{}, core.ErrInvalidUser
	}
	for i, m := range f.montos {
		if m.ID == id && m.UserID == userID {
			f.montos[i].Selected = true
			return f.montos[i], nil
		}
	}
	return core.Amount{}, services.ErrNotFound
}

func (f *fakeLedger) CreateSaving(ctx context.Context, s core.Saving) (core.Saving, error) {
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	if err := s.Validate(); err != nil {
		return core.Saving{}, err
	}
	s.ID = int64(len(f.savings) + 1)
	f.savings = append(f.savings, s)
	return s, nil
}

func (f *fakeLedger) Savings(ctx context.Context) ([]core.Saving, error) {
	return f.savings, nil
}

func (f *fakeLedger) Init(ctx context.Context) error { return f.initErr }

type fakeGoals struct {
	stats           core.Statistics
	milestones      []core.Milestone
	statsCalls      int
	milestonesCalls int
}

func (f *fakeGoals) Statistics(ctx context.Context) (core.Statistics, error) {
	f.statsCalls++
	return f.stats, nil
}

func (f *fakeGoals) Milestones(ctx context.Context) ([]core.Milestone, error) {
	f.milestonesCalls++
	return f.milestones, nil
}

type fakeChallenges struct {
	active    *core.Challenge
	pool      []core.Challenge
	history   []core.Challenge
	penalties []core.Penalty
	expired   bool
	applied   bool
}

func (f *fakeChallenges) Create(ctx context.Context, description string) (core.Challenge, error) {
	if description == "" {
		return core.Challenge{}, core.ErrEmptyDescription
	}
	c := core.Challenge{ID: int64(len(f.pool) + 1), Description: description}
	f.pool = append(f.pool, c)
	return c, nil
}

func (f *fakeChallenges) Available(ctx context.Context) ([]core.Challenge, error) {
	return f.pool, nil
}

func (f *fakeChallenges) Current(ctx context.Context) (*core.Challenge, error) {
	return f.active, nil
}

func (f *fakeChallenges) History(ctx context.Context) ([]core.Challenge, error) {
	return f.history, nil
}

func (f *fakeChallenges) ActivateRandom(ctx context.Context) (core.Challenge, error) {
	if f.active != nil {
		return *f.active, services.ErrChallengeActive
	}
	if len(f.pool) == 0 {
		return core.Challenge{}, services.ErrNoChallenges
	}
	chosen := f.pool[0]
	now := time.Now()
	chosen.ActivatedAt = &now
	f.pool = f.pool[1:]
	f.active = &chosen
	return chosen, nil
}

func (f *fakeChallenges) Complete(ctx context.Context, id, userID int64) (core.Challenge, bool, error) {
	if !core.ValidUserID(userID) {
		return core.Challenge{}, false, core.ErrInvalidUser
	}
	if f.active == nil || f.active.ID != id {
		return core.Challenge{}, false, services.ErrNotFound
	}
	if f.expired {
		return *f.active, false, services.ErrChallengeExpired
	}
	if userID == core.UserOne {
		f.active.CompletedByUser1 = true
	} else {
		f.active.CompletedByUser2 = true
	}
	return *f.active, f.active.BothCompleted(), nil
}

func (f *fakeChallenges) ApplyPenalty(ctx context.Context, id int64) error {
	if f.active == nil || f.active.ID != id {
		return services.ErrNotFound
	}
	f.active.PenaltyApplied = true
	f.applied = true
	return nil
}

func (f *fakeChallenges) Penalties(ctx context.Context) ([]core.Penalty, error) {
	return f.penalties, nil
}

func (f *fakeChallenges) AddPenalty(ctx context.Context, text string) (core.Penalty, error) {
	if text == "" {
		return core.Penalty{}, core.ErrEmptyDescription
	}
	p := core.Penalty{ID: int64(len(f.penalties) + 1), Text: text}
	f.penalties = append(f.penalties, p)
	return p, nil
}

func (f *fakeChallenges) RandomPenalty(ctx context.Context) (core.Penalty, error) {
	if len(f.penalties) == 0 {
		return core.Penalty{}, services.ErrNoPenalties
	}
	return f.penalties[0], nil
}

func newTestServer(t *testing.T, ledger Ledger, goals GoalEngine, challenges ChallengeEngine) *Server {
	t.Helper()
	srv := NewServer(":0", ledger, goals, challenges, time.Minute)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func doJSON(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	var banner map[string]string
	decodeBody(t, rr, &banner)
	if banner["message"] != "Ahorro 2026 API" {
		t.Fatalf("banner=%q", banner["message"])
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doJSON(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestReadyFailsWhenDatabaseDown(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{initErr: context.DeadlineExceeded}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/readyz", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", rr.Code)
	}
}

func TestCreateAhorro(t *testing.T) {
	ledger := &fakeLedger{}
	srv := newTestServer(t, ledger, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodPost, "/ahorros", `{"user_id":1,"monto_id":3,"amount":50000}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got ahorroJSON
	decodeBody(t, rr, &got)
	if got.ID != 1 || got.UserID != 1 || got.MontoID != 3 || got.Amount != 50000 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Date.IsZero() {
		t.Fatal("date should default to now")
	}
}

func TestCreateAhorroValidation(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"user_id":`, http.StatusBadRequest},
		{"unknown user", `{"user_id":3,"monto_id":1,"amount":100}`, http.StatusBadRequest},
		{"zero amount", `{"user_id":1,"monto_id":1,"amount":0}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, srv, http.MethodPost, "/ahorros", tc.body)
			if rr.Code != tc.want {
				t.Fatalf("status=%d, want %d (body=%s)", rr.Code, tc.want, rr.Body.String())
			}
			var resp errorResponse
			decodeBody(t, rr, &resp)
			if resp.Detail == "" {
				t.Fatal("error responses carry a detail field")
			}
		})
	}
}

func TestEstadisticasIsCached(t *testing.T) {
	goals := &fakeGoals{stats: core.Statistics{
		Total:           core.Money{Cents: 350_000_000},
		CurrentTarget:   core.Money{Cents: 500_000_000},
		ProgressPercent: 70,
	}}
	srv := newTestServer(t, &fakeLedger{}, goals, &fakeChallenges{})

	for i := 0; i < 2; i++ {
		rr := doJSON(t, srv, http.MethodGet, "/estadisticas", "")
		if rr.Code != http.StatusOK {
			t.Fatalf("status=%d", rr.Code)
		}
	}
	if goals.statsCalls != 1 {
		t.Fatalf("statsCalls=%d, want 1 (second hit should be cached)", goals.statsCalls)
	}

	var got estadisticasJSON
	rr := doJSON(t, srv, http.MethodGet, "/estadisticas", "")
	decodeBody(t, rr, &got)
	if got.TotalGeneral != 3_500_000 || got.ObjetivoActual != 5_000_000 || got.ProgresoPorcentaje != 70 {
		t.Fatalf("unexpected statistics: %+v", got)
	}
}

func TestCreateAhorroInvalidatesStatsCache(t *testing.T) {
	goals := &fakeGoals{}
	srv := newTestServer(t, &fakeLedger{}, goals, &fakeChallenges{})

	doJSON(t, srv, http.MethodGet, "/estadisticas", "")
	doJSON(t, srv, http.MethodPost, "/ahorros", `{"user_id":1,"monto_id":1,"amount":100}`)
	doJSON(t, srv, http.MethodGet, "/estadisticas", "")

	if goals.statsCalls != 2 {
		t.Fatalf("statsCalls=%d, want 2 (write should bust the cache)", goals.statsCalls)
	}
}

func TestObjetivos(t *testing.T) {
	now := time.Now()
	goals := &fakeGoals{milestones: []core.Milestone{
		{ID: 1, Target: core.Money{Cents: 100_000_000}, Completed: true, CompletedAt: &now},
		{ID: 2, Target: core.Money{Cents: 200_000_000}},
	}}
	srv := newTestServer(t, &fakeLedger{}, goals, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/objetivos", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var got []objetivoJSON
	decodeBody(t, rr, &got)
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	if !got[0].Completed || got[0].CompletedAt == nil || got[0].Amount != 1_000_000 {
		t.Fatalf("first objetivo: %+v", got[0])
	}
	if got[1].Completed || got[1].CompletedAt != nil {
		t.Fatalf("second objetivo: %+v", got[1])
	}
}

func TestSelectMonto(t *testing.T) {
	ledger := &fakeLedger{montos: []core.Amount{
		{ID: 5, UserID: 1, Value: core.Money{Cents: 10_000_00}},
	}}
	srv := newTestServer(t, ledger, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodPut, "/montos/5/select?user_id=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got struct {
		Message string    `json:"message"`
		Monto   montoJSON `json:"monto"`
	}
	decodeBody(t, rr, &got)
	if got.Message != "Monto selected" || !got.Monto.Selected {
		t.Fatalf("unexpected response: %+v", got)
	}

	if rr := doJSON(t, srv, http.MethodPut, "/montos/5/select", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("missing user_id status=%d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodPut, "/montos/99/select?user_id=1", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown monto status=%d", rr.Code)
	}
}

func TestListMontosMergesBothUsers(t *testing.T) {
	ledger := &fakeLedger{montos: []core.Amount{
		{ID: 1, UserID: 1, Value: core.Money{Cents: 100}},
		{ID: 2, UserID: 2, Value: core.Money{Cents: 200}},
	}}
	srv := newTestServer(t, ledger, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/montos", "")
	var all []montoJSON
	decodeBody(t, rr, &all)
	if len(all) != 2 {
		t.Fatalf("all montos len=%d", len(all))
	}

	rr = doJSON(t, srv, http.MethodGet, "/montos?user_id=2", "")
	var one []montoJSON
	decodeBody(t, rr, &one)
	if len(one) != 1 || one[0].UserID != 2 {
		t.Fatalf("filtered montos: %+v", one)
	}
}

func TestRetoActualEmpty(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/retos/actual", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var got struct {
		Reto *retoJSON `json:"reto"`
	}
	decodeBody(t, rr, &got)
	if got.Reto != nil {
		t.Fatalf("expected null reto, got %+v", got.Reto)
	}
}

func TestActivarReto(t *testing.T) {
	challenges := &fakeChallenges{pool: []core.Challenge{
		{ID: 1, Description: "No pedir domicilios hoy"},
	}}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodPost, "/retos/activar", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got retoEnvelope
	decodeBody(t, rr, &got)
	if got.Message != "Reto activado" || got.Reto.Date == nil {
		t.Fatalf("unexpected response: %+v", got)
	}

	// Second activation conflicts and reports the running challenge.
	rr = doJSON(t, srv, http.MethodPost, "/retos/activar", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("second activation status=%d", rr.Code)
	}
	decodeBody(t, rr, &got)
	if got.Message != "Ya existe un reto activo" || got.Reto.ID != 1 {
		t.Fatalf("unexpected conflict response: %+v", got)
	}
}

func TestActivarRetoEmptyPool(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodPost, "/retos/activar", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rr.Code)
	}
	var resp errorResponse
	decodeBody(t, rr, &resp)
	if resp.Detail != "No hay retos disponibles" {
		t.Fatalf("detail=%q", resp.Detail)
	}
}

func TestCompleteReto(t *testing.T) {
	now := time.Now()
	challenges := &fakeChallenges{active: &core.Challenge{
		ID: 7, Description: "Cocinar en casa", ActivatedAt: &now,
	}}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodPost, "/retos/7/complete?user_id=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got struct {
		Message          string   `json:"message"`
		Reto             retoJSON `json:"reto"`
		AmbosCompletados bool     `json:"ambos_completados"`
	}
	decodeBody(t, rr, &got)
	if got.Message != "Reto completado" || got.AmbosCompletados {
		t.Fatalf("after first completion: %+v", got)
	}

	rr = doJSON(t, srv, http.MethodPost, "/retos/7/complete?user_id=2", "")
	decodeBody(t, rr, &got)
	if !got.AmbosCompletados {
		t.Fatal("both users completed, flag should be set")
	}

	if rr := doJSON(t, srv, http.MethodPost, "/retos/7/complete?user_id=9", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid user status=%d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodPost, "/retos/99/complete?user_id=1", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown reto status=%d", rr.Code)
	}
}

func TestCompleteExpiredReto(t *testing.T) {
	old := time.Now().Add(-25 * time.Hour)
	challenges := &fakeChallenges{
		active:  &core.Challenge{ID: 3, ActivatedAt: &old},
		expired: true,
	}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodPost, "/retos/3/complete?user_id=1", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rr.Code)
	}
	var resp errorResponse
	decodeBody(t, rr, &resp)
	if resp.Detail != "El reto ha expirado" {
		t.Fatalf("detail=%q", resp.Detail)
	}
}

func TestAplicarPenitencia(t *testing.T) {
	old := time.Now().Add(-25 * time.Hour)
	challenges := &fakeChallenges{active: &core.Challenge{ID: 4, ActivatedAt: &old}}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodPost, "/retos/4/aplicar-penitencia", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got map[string]string
	decodeBody(t, rr, &got)
	if got["message"] != "Penitencia aplicada" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if !challenges.applied {
		t.Fatal("penalty flag should be set")
	}

	// Re-applying is an idempotent no-op.
	if rr := doJSON(t, srv, http.MethodPost, "/retos/4/aplicar-penitencia", ""); rr.Code != http.StatusOK {
		t.Fatalf("second application status=%d", rr.Code)
	}

	if rr := doJSON(t, srv, http.MethodPost, "/retos/99/aplicar-penitencia", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown reto status=%d", rr.Code)
	}
}

func TestPenitencias(t *testing.T) {
	challenges := &fakeChallenges{penalties: []core.Penalty{
		{ID: 1, Text: "Preparar el desayuno"},
		{ID: 2, Text: "Lavar los platos"},
	}}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodGet, "/penitencias", "")
	var got struct {
		Penitencias []string `json:"penitencias"`
	}
	decodeBody(t, rr, &got)
	if len(got.Penitencias) != 2 || got.Penitencias[0] != "Preparar el desayuno" {
		t.Fatalf("unexpected penitencias: %+v", got.Penitencias)
	}

	rr = doJSON(t, srv, http.MethodGet, "/penitencias/random", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("random status=%d", rr.Code)
	}
}

func TestRandomPenitenciaEmptyPool(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/penitencias/random", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rr.Code)
	}
	var resp errorResponse
	decodeBody(t, rr, &resp)
	if resp.Detail != "No hay penitencias disponibles" {
		t.Fatalf("detail=%q", resp.Detail)
	}
}

func TestCrearReto(t *testing.T) {
	challenges := &fakeChallenges{}
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, challenges)

	rr := doJSON(t, srv, http.MethodPost, "/retos/crear", `{"description":"Caminar al trabajo"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, srv, http.MethodPost, "/retos/crear?description=Sin+gastos+hormiga", ""); rr.Code != http.StatusCreated {
		t.Fatalf("query form status=%d", rr.Code)
	}

	if rr := doJSON(t, srv, http.MethodPost, "/retos/crear", `{"description":""}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty description status=%d", rr.Code)
	}

	if len(challenges.pool) != 2 {
		t.Fatalf("pool len=%d", len(challenges.pool))
	}
}

func TestUsersEndpoints(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodPost, "/users", `{"name":"Persona 1","color":"person1"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, srv, http.MethodGet, "/users/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status=%d", rr.Code)
	}
	var got userJSON
	decodeBody(t, rr, &got)
	if got.Name != "Persona 1" {
		t.Fatalf("user=%+v", got)
	}

	if rr := doJSON(t, srv, http.MethodGet, "/users/42", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("missing user status=%d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodPost, "/users", `{"name":"","color":"x"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank name status=%d", rr.Code)
	}
}

func TestInit(t *testing.T) {
	goals := &fakeGoals{}
	srv := newTestServer(t, &fakeLedger{}, goals, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodPost, "/init", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var got map[string]string
	decodeBody(t, rr, &got)
	if got["message"] != "Database initialized" {
		t.Fatalf("message=%q", got["message"])
	}
	if goals.milestonesCalls != 1 {
		t.Fatalf("milestonesCalls=%d, want 1 (init seeds the ladder)", goals.milestonesCalls)
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	srv := newTestServer(t, &fakeLedger{}, &fakeGoals{}, &fakeChallenges{})

	rr := doJSON(t, srv, http.MethodGet, "/", "")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing X-Content-Type-Options")
	}
	if rr.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatal("missing X-Frame-Options")
	}
}
