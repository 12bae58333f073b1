package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harukichisan/othello-web2/engine"
	"github.com/harukichisan/othello-web2/experiments"
	"github.com/harukichisan/othello-web2/game"
	"github.com/harukichisan/othello-web2/meta"
	"github.com/harukichisan/othello-web2/searcher"
	"github.com/harukichisan/othello-web2/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	selfplay := flag.Bool("selfplay", false, "run difficulty self-play matchups instead of the server")
	games := flag.Int("games", meta.SELFPLAY_GAMES, "games per pairing in self-play mode")
	flag.Parse()

	if *selfplay {
		if _, err := experiments.RunMatchups(*games); err != nil {
			log.Fatal().Err(err).Msg("self-play run failed")
		}
		return
	}

	session := engine.NewSession(engine.Config{
		Mode:       engine.HumanVsCPU,
		Difficulty: searcher.Normal,
		HumanSide:  game.Black,
	})
	srv := server.New(session, log.Logger)
	cfg := server.ConfigFromEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go srv.Run(ctx.Done())

	httpServer := &http.Server{Addr: cfg.Addr, Handler: srv.Router()}
	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	log.Info().Msgf("othello server listening on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
