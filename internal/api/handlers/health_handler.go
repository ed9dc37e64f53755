package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Cheertaboi/shop-admin/internal/api/respond"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Printf("[health] db ping: %v", err)
			respond.JSON(w, http.StatusServiceUnavailable, respond.Envelope{Status: false, Message: "database unavailable"})
			return
		}
		respond.Data(w, http.StatusOK, map[string]string{"db": "ok"}, "ok")
	}
}
