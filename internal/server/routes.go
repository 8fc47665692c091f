package server

import (
	"net/http"
)

// SetupRoutes wires the HTTP query surface's handlers onto a fresh mux.
func SetupRoutes(workHandler *WorkLookupService) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/works/", workHandler.GetWorkRecords)

	return mux
}
