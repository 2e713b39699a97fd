package server

import "net/http"

// Server exposes the pipeline over HTTP
type Server interface {
	Handler() http.Handler
	ListenAndServe() error
}
