package http

import (
	"errors"
	"net/http"
	"strings"

	"ahorro/internal/services"
)

type retoEnvelope struct {
	Message string   `json:"message"`
	Reto    retoJSON `json:"reto"`
}

func (s *Server) handleRetoHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.challenges.History(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}

	out := make([]retoJSON, 0, len(history))
	for _, c := range history {
		out = append(out, retoToJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRetoActual(w http.ResponseWriter, r *http.Request) {
	current, err := s.challenges.Current(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}

	var reto *retoJSON
	if current != nil {
		j := retoToJSON(*current)
		reto = &j
	}
	writeJSON(w, http.StatusOK, struct {
		Reto *retoJSON `json:"reto"`
	}{Reto: reto})
}

func (s *Server) handleRetosDisponibles(w http.ResponseWriter, r *http.Request) {
	available, err := s.challenges.Available(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}

	out := make([]retoJSON, 0, len(available))
	for _, c := range available {
		out = append(out, retoToJSON(c))
	}
	writeJSON(w, http.StatusOK, struct {
		Disponibles []retoJSON `json:"retos_disponibles"`
		Total       int        `json:"total"`
	}{Disponibles: out, Total: len(out)})
}

func (s *Server) handleCrearReto(w http.ResponseWriter, r *http.Request) {
	description := strings.TrimSpace(r.URL.Query().Get("description"))
	if description == "" {
		var req struct {
			Description string `json:"description"`
		}
		if err := decodeJSON(r, &req); err == nil {
			description = strings.TrimSpace(req.Description)
		}
	}

	reto, err := s.challenges.Create(r.Context(), description)
	if err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}
	writeJSON(w, http.StatusCreated, retoToJSON(reto))
}

func (s *Server) handleActivarReto(w http.ResponseWriter, r *http.Request) {
	reto, err := s.challenges.ActivateRandom(r.Context())
	switch {
	case errors.Is(err, services.ErrChallengeActive):
		// The running challenge rides along so the client can show it.
		writeJSON(w, http.StatusConflict, retoEnvelope{
			Message: "Ya existe un reto activo",
			Reto:    retoToJSON(reto),
		})
	case err != nil:
		writeServiceError(w, r, err, "Reto not found")
	default:
		writeJSON(w, http.StatusOK, retoEnvelope{
			Message: "Reto activado",
			Reto:    retoToJSON(reto),
		})
	}
}

func (s *Server) handleCompleteReto(w http.ResponseWriter, r *http.Request) {
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

	reto, both, err := s.challenges.Complete(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message          string   `json:"message"`
		Reto             retoJSON `json:"reto"`
		AmbosCompletados bool     `json:"ambos_completados"`
	}{
		Message:          "Reto completado",
		Reto:             retoToJSON(reto),
		AmbosCompletados: both,
	})
}

func (s *Server) handleAplicarPenitencia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador no válido")
		return
	}

	if err := s.challenges.ApplyPenalty(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Reto not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Penitencia aplicada"})
}

func (s *Server) handleListPenitencias(w http.ResponseWriter, r *http.Request) {
	penalties, err := s.challenges.Penalties(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Penitencia not found")
		return
	}

	out := make([]string, 0, len(penalties))
	for _, p := range penalties {
		out = append(out, p.Text)
	}
	writeJSON(w, http.StatusOK, struct {
		Penitencias []string `json:"penitencias"`
	}{Penitencias: out})
}

func (s *Server) handleCreatePenitencia(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	penalty, err := s.challenges.AddPenalty(r.Context(), strings.TrimSpace(req.Text))
	if err != nil {
		writeServiceError(w, r, err, "Penitencia not found")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}{ID: penalty.ID, Text: penalty.Text})
}

func (s *Server) handleRandomPenitencia(w http.ResponseWriter, r *http.Request) {
	penalty, err := s.challenges.RandomPenalty(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Penitencia not found")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Penitencia string `json:"penitencia"`
	}{Penitencia: penalty.Text})
}
