package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/cashpoint/cashpoint/models/counter"
)

// Healthz is the liveness probe.
func (atm *ATM) Healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats returns the usage counters as JSON.
func (atm *ATM) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	counts, err := counter.All()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read counters"})
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
