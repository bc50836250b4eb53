// The mazed command serves maze sessions over websockets.
package main

import (
	"fmt"
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"robotmaze/pkg/game/config"
	"robotmaze/pkg/game/server"
)

type Server struct {
	router     *way.Router
	PlayServer *server.PlayServer
}

func main() {
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	srv := Server{
		PlayServer: server.NewPlayServer(),
	}
	srv.PlayServer.DefaultMaze = cfg.MazeName
	srv.routes()

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.WithField("addr", addr).Info("listening")
	log.Fatalln(http.ListenAndServe(addr, srv.router))
}
