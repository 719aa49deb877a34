package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialeradmin/config"
	"dialeradmin/data"
	"dialeradmin/routes"
	"dialeradmin/session"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve", "s"},
	Short:   "Start the admin server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// sessionStore - redis unless session.driver is memory
func sessionStore() (session.Store, error) {

	ttl := conf.GetDuration("session.ttl")

	switch conf.GetString("session.driver") {
	case "memory":
		store := session.NewMemoryStore(ttl)

		go func() {
			for range time.Tick(time.Minute) {
				store.Purge()
			}
		}()

		return store, nil
	case "redis":
		client, err := data.OpenRedis(conf)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, ttl), nil
	}

	return nil, fmt.Errorf("unknown session driver %q", conf.GetString("session.driver"))
}

func run() error {

	if err := config.Validate(conf); err != nil {
		return err
	}

	db := data.GetDB()
	if db == nil {
		return fmt.Errorf("database unavailable")
	}
	defer db.Close()

	store, err := sessionStore()
	if err != nil {
		return err
	}

	//attach routes
	router := routes.Router(routes.Deps{
		Config:   conf,
		DB:       db,
		Sessions: store,
		Logger:   log,
	})

	// HTTP Server
	server := &http.Server{
		Addr:           ":" + conf.GetString("app.port"),
		Handler:        router,
		ReadTimeout:    15 * time.Minute,
		WriteTimeout:   15 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	// Handle graceful shutdown on SIGINT
	idleConnectionsClosed := make(chan struct{})

	go func() {

		s := make(chan os.Signal, 1)
		signal.Notify(s, os.Interrupt, syscall.SIGTERM)
		<-s

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// We received an interrupt signal, shut down.
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("HTTP server shutdown error: %v", err)
		}

		close(idleConnectionsClosed)
	}()

	log.Infof("Starting server on http://%s", server.Addr)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed

	return nil
}
