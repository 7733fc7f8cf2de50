package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/Rhysnute92/fitlog/internal/models"
)

// mealAnalyzer and productLookup are the two upstream calls the proxy fronts.
type mealAnalyzer interface {
	AnalyzeMeal(ctx context.Context, imageBase64 string) (*models.Product, error)
}

type productLookup interface {
	ProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
}

// Server is the thin companion service for the app: it keeps the vision API
// key off the client and gives it a same-origin lookup endpoint. It holds no
// state of its own and never touches the local logs.
type Server struct {
	router   *mux.Router
	analyzer mealAnalyzer
	lookup   productLookup
}

func New(analyzer mealAnalyzer, lookup productLookup) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		analyzer: analyzer,
		lookup:   lookup,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(logMiddleware)
	s.router.HandleFunc("/analyze-meal", s.handleAnalyzeMeal).Methods(http.MethodPost)
	s.router.HandleFunc("/lookup/{barcode}", s.handleLookup).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.WithField("addr", addr).Info("server listening")
	return httpServer.ListenAndServe()
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}
