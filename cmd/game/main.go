package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"quadratum/internal/bootstrap"
	gameuc "quadratum/internal/usecase/game"
)

type matchResult struct {
	Game   int            `json:"game"`
	GameID string         `json:"game_id"`
	Winner string         `json:"winner,omitempty"`
	Draw   bool           `json:"draw"`
	Scores map[string]int `json:"scores"`
	Moves  int            `json:"moves"`
}

// Plays games between two bots configured like the server and prints one JSON
// line per game.
func main() {
	cfgPath := pflag.String("config", ".env", "path to the env file")
	games := pflag.Int("games", 1, "number of games to play")
	first := pflag.String("first", "", "name of the player who moves first (default PLAYER1_NAME)")
	alternate := pflag.Bool("alternate", false, "swap the first player after every game")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log := logger.Sugar()
	defer func() { _ = log.Sync() }()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		log.Fatalw("Failed to setup configuration", "error", err)
	}
	cfg.Player1Kind = bootstrap.KindBot
	cfg.Player2Kind = bootstrap.KindBot

	session, err := gameuc.NewSession(*cfg, log)
	if err != nil {
		log.Fatalw("Failed to create game session", "error", err)
	}

	starter := *first
	if starter == "" {
		starter = cfg.Player1Name
	}

	wins := map[string]int{}
	encoder := json.NewEncoder(os.Stdout)
	for i := 1; i <= *games; i++ {
		state, err := session.Start(starter)
		if err != nil {
			log.Fatalw("Failed to start game", "error", err)
		}

		moves := 0
		for _, cell := range state.Cells {
			if cell != "" {
				moves++
			}
		}
		if state.Draw {
			wins["draw"]++
		} else {
			wins[state.Winner]++
		}

		if err := encoder.Encode(matchResult{
			Game:   i,
			GameID: state.GameID,
			Winner: state.Winner,
			Draw:   state.Draw,
			Scores: state.Scores,
			Moves:  moves,
		}); err != nil {
			log.Fatalw("Failed to write result", "error", err)
		}

		if *alternate {
			starter = otherPlayer(*cfg, starter)
		}
	}

	log.Infow("match finished", "games", *games, "results", fmt.Sprint(wins))
}

func otherPlayer(cfg bootstrap.Config, name string) string {
	if name == cfg.Player1Name {
		return cfg.Player2Name
	}
	return cfg.Player1Name
}
