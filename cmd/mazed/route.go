package main

import (
	"github.com/matryer/way"
)

const (
	uriPlay  = "/play"
	uriMazes = "/mazes"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", uriPlay, s.PlayServer.HandlePlay())
	s.router.HandleFunc("GET", uriMazes, s.PlayServer.HandleMazeList())
}
