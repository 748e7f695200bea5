package http

import "net/http"

func (s *Server) handleEstadisticas(w http.ResponseWriter, r *http.Request) {
	if stats, ok := s.statsCache.Get(statsCacheKey); ok {
		writeJSON(w, http.StatusOK, estadisticasToJSON(stats))
		return
	}

	stats, err := s.goals.Statistics(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Estadísticas no disponibles")
		return
	}

	s.statsCache.Set(statsCacheKey, stats)
	writeJSON(w, http.StatusOK, estadisticasToJSON(stats))
}

func (s *Server) handleObjetivos(w http.ResponseWriter, r *http.Request) {
	milestones, err := s.goals.Milestones(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Objetivos no disponibles")
		return
	}

	out := make([]objetivoJSON, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, objetivoToJSON(m))
	}
	writeJSON(w, http.StatusOK, out)
}
