package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cohort-dashboard/internal/domain"
)

type healthcheckResponse struct {
	Status     string             `json:"status"`
	Time       string             `json:"time"`
	Selections []domain.Selection `json:"selections"`
}

// HealthcheckHandler responde à sonda de liveness do provedor de hospedagem.
// Não há dependências externas a checar: as tabelas ficam em memória desde o início.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, healthcheckResponse{
			Status:     "ok",
			Time:       time.Now().UTC().Format(time.RFC3339),
			Selections: domain.Selections,
		})
	})
}
