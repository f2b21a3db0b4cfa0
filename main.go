package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/gops/agent"
	"github.com/julienschmidt/httprouter"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/cashpoint/cashpoint/channels/telegram"
	"github.com/cashpoint/cashpoint/connections"
	"github.com/cashpoint/cashpoint/controllers"
	"github.com/cashpoint/cashpoint/jobs"
	"github.com/cashpoint/cashpoint/middleware"
	"github.com/cashpoint/cashpoint/models/account"
)

type atmRouter struct {
	httprouter.Router
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (ar atmRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
	ar.Router.ServeHTTP(rw, r)
	log.WithFields(log.Fields{
		"method": r.Method,
		"IP":     r.RemoteAddr,
		"URI":    r.URL.Path,
		"status": rw.statusCode,
	}).Info("visit")
}

func main() {
	if err := telegram.Init(); err != nil {
		log.WithError(err).Fatal("Telegram Alert Channel Initialize Failed")
	}

	log.Info("Start Jobs")
	startJobs()

	// accounts are seeded in memory and reset on every restart
	store := account.Seed()
	atm := controllers.New(store)
	router := &atmRouter{Router: *atm.Router()}

	// gops agent
	if err := agent.Listen(agent.Options{Addr: ":6060", ShutdownCleanup: true}); err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Web Server
	log.Info("Web Server Start on Port " + port)
	srv := http.Server{
		Addr:    ":" + port,
		Handler: middleware.SecureHeaders(router),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutdown Web Server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Web Server Shutdown Failed")
	}
	connections.CloseRedis()
	log.Info("Web Server Was Been Shutdown")
}

func startJobs() {
	c := cron.New()
	c.AddJob("@hourly", jobs.NewCounterRollup())
	c.Start()
}
