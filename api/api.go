package api

import (
	"encoding/json"
	"net/http"

	"github.com/jaym/kapchunk/index"
)

type ApiHandler struct {
	db *index.Database
}

func NewApiHandler(db *index.Database) http.Handler {
	mux := http.NewServeMux()

	apiHandler := &ApiHandler{db: db}

	mux.HandleFunc("/search", apiHandler.searchHandler)
	mux.HandleFunc("/chunks/{mediaId}", apiHandler.chunksHandler)

	return allowCORS(mux)
}

func allowCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		h.ServeHTTP(w, r)
	})
}

func (h *ApiHandler) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results, err := h.db.Search(r.Context(), query)
	if err != nil {
		http.Error(w, "Failed to search", http.StatusInternalServerError)
		return
	}
	if len(results) == 0 {
		results = []index.ChunkRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (h *ApiHandler) chunksHandler(w http.ResponseWriter, r *http.Request) {
	mediaID := r.PathValue("mediaId")
	if mediaID == "" {
		http.Error(w, "Invalid media id", http.StatusBadRequest)
		return
	}

	chunks, err := h.db.ListChunks(r.Context(), mediaID)
	if err != nil {
		http.Error(w, "Failed to list chunks", http.StatusInternalServerError)
		return
	}

	if len(chunks) == 0 {
		http.Error(w, "Media not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chunks)
}
