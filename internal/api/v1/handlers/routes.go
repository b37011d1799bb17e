package handlers

import (
	"net/http"

	"github.com/HexaCluster/pg-summarize/internal/api/v1/middleware"
	"github.com/HexaCluster/pg-summarize/internal/summarizer"
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the v1 API onto the router. The hello endpoint
// stays open so it can serve as a wiring probe even when auth is on.
func RegisterRoutes(r *mux.Router, svc *summarizer.Service) {
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.Handle("/summarize", middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleSummarize(svc, w, r)
	}))).Methods("POST")

	v1.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		HandleHello(svc, w, r)
	}).Methods("GET")
}
