package http

import (
	"log/slog"
	"net/http"
	"time"

	"ahorro/internal/core"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	user, err := s.ledger.CreateUser(r.Context(), req.Name, req.Color)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, userToJSON(user))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador no válido")
		return
	}

	user, err := s.ledger.User(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, userToJSON(user))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.ledger.Users(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	out := make([]userJSON, 0, len(users))
	for _, u := range users {
		out = append(out, userToJSON(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMonto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
		UserID int64   `json:"user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	monto, err := s.ledger.CreateAmount(r.Context(), req.UserID, core.FromUnits(req.Amount))
	if err != nil {
		writeServiceError(w, r, err, "Monto not found")
		return
	}
	writeJSON(w, http.StatusCreated, montoToJSON(monto))
}

// handleListMontos lists the amount board. With ?user_id= it returns one
// user's montos; without it, both users' montos.
func (s *Server) handleListMontos(w http.ResponseWriter, r *http.Request) {
	userIDs := []int64{core.UserOne, core.UserTwo}
	if id, ok := queryInt64(r, "user_id"); ok {
		userIDs = []int64{id}
	}

	out := make([]montoJSON, 0)
	for _, userID := range userIDs {
		montos, err := s.ledger.Amounts(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Monto not found")
			return
		}
		for _, m := range montos {
			out = append(out, montoToJSON(m))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSelectMonto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador no válido")
		return
	}
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Usuario inválido")
		return
	}

	monto, err := s.ledger.SelectAmount(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err, "Monto not found")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string    `json:"message"`
		Monto   montoJSON `json:"monto"`
	}{
		Message: "Monto selected",
		Monto:   montoToJSON(monto),
	})
}

func (s *Server) handleCreateAhorro(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  int64      `json:"user_id"`
		MontoID int64      `json:"monto_id"`
		Amount  float64    `json:"amount"`
		Date    *time.Time `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	saving := core.Saving{
		UserID:   req.UserID,
		AmountID: req.MontoID,
		Amount:   core.FromUnits(req.Amount),
	}
	if req.Date != nil {
		saving.Date = *req.Date
	}

	saved, err := s.ledger.CreateSaving(r.Context(), saving)
	if err != nil {
		writeServiceError(w, r, err, "Ahorro not found")
		return
	}

	s.invalidateStats()
	slog.InfoContext(r.Context(), "Saving recorded",
		"saving_id", saved.ID,
		"user_id", saved.UserID,
		"amount_cents", saved.Amount.Cents)
	writeJSON(w, http.StatusCreated, ahorroToJSON(saved))
}

func (s *Server) handleListAhorros(w http.ResponseWriter, r *http.Request) {
	savings, err := s.ledger.Savings(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ahorro not found")
		return
	}

	out := make([]ahorroJSON, 0, len(savings))
	for _, saving := range savings {
		out = append(out, ahorroToJSON(saving))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Init(r.Context()); err != nil {
		writeServiceError(w, r, err, "Database not found")
		return
	}
	// Users and penalties come from the migration seed; the milestone
	// ladder is seeded on first read, so force that read here.
	if _, err := s.goals.Milestones(r.Context()); err != nil {
		writeServiceError(w, r, err, "Objetivos no disponibles")
		return
	}
	s.invalidateStats()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Database initialized"})
}
