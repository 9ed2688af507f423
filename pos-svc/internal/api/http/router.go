package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"sushi-pos/logging"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Use(logging.Middleware(handler.logger()))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

func StartServer(addr string, handler http.Handler, logger *log.Entry) {
	logger.Infof("POS Service starting on %s", addr)
	logger.Fatal(http.ListenAndServe(addr, handler))
}
