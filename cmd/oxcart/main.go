package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	cli.Main(context.Background(), NewMux(&logging.Logger{Out: os.Stderr}))
}

func NewMux(l *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("sort", SortCommand{log: l})
	m.Handle("top", TopCommand{log: l})
	return &m
}
