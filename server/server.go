package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Daskott/kontacts/backup"
	"github.com/Daskott/kontacts/logger"
	"github.com/Daskott/kontacts/logic"
	"github.com/Daskott/kontacts/shared"
	"github.com/gorilla/mux"
)

var logg = logger.NewLogger()

// NewRouter serves the address book; every route needs a token signed with 'authSecret'
func NewRouter(manager *logic.Manager, authSecret string) *mux.Router {
	h := &handler{manager: manager}

	router := mux.NewRouter()
	router.Use(loggingMiddleware, contentTypeMiddleware, authMiddleware(authSecret))

	router.HandleFunc("/persons", h.listPersons).Methods("GET")
	router.HandleFunc("/persons/{index}", h.deletePerson).Methods("DELETE")
	router.HandleFunc("/persons/{index}/emergency-contacts/{ecIndex}", h.deleteEmergencyContact).Methods("DELETE")
	router.HandleFunc("/commands", h.executeCommand).Methods("POST")

	return router
}

// Start serves the address book over http until the process is interrupted,
// then closes 'store'. 'scheduler' is optional.
func Start(config *shared.Config, manager *logic.Manager, store io.Closer, scheduler *backup.Scheduler) {
	server := newHTTPServer(config.Server, manager)

	if scheduler != nil {
		fatalOnError(scheduler.Start())
	}

	go serve(server)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	cleanup(server, scheduler, store)
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func newHTTPServer(config shared.ServerConfig, manager *logic.Manager) *http.Server {
	return &http.Server{
		Addr:    config.Address(),
		Handler: NewRouter(manager, config.AuthSecret),
	}
}

func serve(server *http.Server) {
	logg.Infof("Kontacts server is listening on %v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

// cleanup stops taking requests, runs one last backup so nothing done since the
// last scheduled one is lost, & closes the storage
func cleanup(server *http.Server, scheduler *backup.Scheduler, store io.Closer) {
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Errorf("Kontacts server shutdown failed:%+s", err)
	}

	if scheduler != nil {
		scheduler.Stop()

		if err := scheduler.BackupNow(context.Background()); err != nil {
			logg.Error(err)
		}
	}

	if err := store.Close(); err != nil {
		logg.Errorf("Unable to close storage: %v", err)
	}

	logg.Infof("Kontacts server stopped properly")
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
