package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ahorro/internal/core"
	"ahorro/internal/services"
)

// errorResponse is the wire shape for every error the API returns.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON reads a JSON request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID extracts the numeric {id} segment from the matched route.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt64(r *http.Request, key string) (int64, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// writeServiceError maps service and domain errors onto HTTP statuses.
// notFound is the detail used for services.ErrNotFound, since the right
// wording depends on which resource the handler was looking up.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrChallengeExpired):
		writeError(w, http.StatusBadRequest, "El reto ha expirado")
	case errors.Is(err, services.ErrChallengeNotActive):
		writeError(w, http.StatusConflict, "El reto no está activo")
	case errors.Is(err, services.ErrNoChallenges):
		writeError(w, http.StatusNotFound, "No hay retos disponibles")
	case errors.Is(err, services.ErrNoPenalties):
		writeError(w, http.StatusNotFound, "No hay penitencias disponibles")
	case errors.Is(err, core.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, "Usuario inválido")
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptyDescription):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeError(w, http.StatusServiceUnavailable, "Servicio no disponible")
	}
}

// extractClientIP resolves the client address, honoring proxy headers.
func extractClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Wire representations. Amounts travel as decimal units, matching what the
// frontend renders, and are converted to cents at the boundary.

type userJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type montoJSON struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	UserID   int64   `json:"user_id"`
	Selected bool    `json:"selected"`
}

type ahorroJSON struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	MontoID int64     `json:"monto_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
}

type objetivoJSON struct {
	ID          int64      `json:"id"`
	Amount      float64    `json:"amount"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type retoJSON struct {
	ID                int64      `json:"id"`
	Description       string     `json:"description"`
	Date              *time.Time `json:"date"`
	CompletedUser1    bool       `json:"completed_user1"`
	CompletedUser2    bool       `json:"completed_user2"`
	PenitenciaApplied bool       `json:"penitencia_applied"`
}

type estadisticasJSON struct {
	TotalMes           float64 `json:"total_mes"`
	FaltanteMes        float64 `json:"faltante_mes"`
	TotalGeneral       float64 `json:"total_general"`
	ObjetivoActual     float64 `json:"objetivo_actual"`
	ProgresoPorcentaje float64 `json:"progreso_porcentaje"`
}

func userToJSON(u core.User) userJSON {
	return userJSON{ID: u.ID, Name: u.Name, Color: u.Color}
}

func montoToJSON(a core.Amount) montoJSON {
	return montoJSON{
		ID:       a.ID,
		Amount:   a.Value.Units(),
		UserID:   a.UserID,
		Selected: a.Selected,
	}
}

func ahorroToJSON(s core.Saving) ahorroJSON {
	return ahorroJSON{
		ID:      s.ID,
		UserID:  s.UserID,
		MontoID: s.AmountID,
		Amount:  s.Amount.Units(),
		Date:    s.Date,
	}
}

func objetivoToJSON(m core.Milestone) objetivoJSON {
	return objetivoJSON{
		ID:          m.ID,
		Amount:      m.Target.Units(),
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
	}
}

func retoToJSON(c core.Challenge) retoJSON {
	return retoJSON{
		ID:                c.ID,
		Description:       c.Description,
		Date:              c.ActivatedAt,
		CompletedUser1:    c.CompletedByUser1,
		CompletedUser2:    c.CompletedByUser2,
		PenitenciaApplied: c.PenaltyApplied,
	}
}

func estadisticasToJSON(s core.Statistics) estadisticasJSON {
	return estadisticasJSON{
		TotalMes:           s.MonthTotal.Units(),
		FaltanteMes:        s.MonthShortfall.Units(),
		TotalGeneral:       s.Total.Units(),
		ObjetivoActual:     s.CurrentTarget.Units(),
		ProgresoPorcentaje: s.ProgressPercent,
	}
}
