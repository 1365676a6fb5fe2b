package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/semantly-go/internal/api/request"
	"github.com/mcoot/semantly-go/internal/api/response"
	"github.com/mcoot/semantly-go/internal/model"
)

func newCreateCmd() *cobra.Command {
	var (
		secretWord string
		maxGuesses int
		players    []string
		presets    []string
	)

	cmd := &cobra.Command{
		Use:   "create <code>",
		Short: "Create a new game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{
				Code:       args[0],
				SecretWord: secretWord,
				MaxGuesses: maxGuesses,
				Players:    players,
			}
			for _, p := range presets {
				req.PresetGuesses = append(req.PresetGuesses, request.PresetGuess{
					Player: "preset",
					Guess:  p,
				})
			}

			var result response.Message
			if err := client.Post("/create_game/", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&secretWord, "secret", "", "Secret word (required)")
	cmd.Flags().IntVar(&maxGuesses, "max-guesses", 20, "Maximum number of guesses")
	cmd.Flags().StringSliceVar(&players, "player", nil, "Player name (repeatable)")
	cmd.Flags().StringSliceVar(&presets, "preset", nil, "Preset guess word (repeatable)")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Fetch a game document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Game
			if err := client.Get("/game/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "guess <code> <word>",
		Short: "Submit a guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.GuessRequest{Player: player, Guess: args[1]}

			var result response.GuessAccepted
			if err := client.Post("/game/"+args[0]+"/guess", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
				return nil
			}

			score := 0.0
			if result.Guess.Score != nil {
				score = *result.Guess.Score
			}
			fmt.Printf("%s guessed %q: %.2f\n", result.Guess.Player, result.Guess.Guess, score)
			if result.GameWon {
				fmt.Println("Game won!")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newGuessesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guesses <code>",
		Short: "List a game's user guesses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Guesses
			if err := client.Get("/game/"+args[0]+"/guesses", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List all games (debug)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.Game
			if err := client.Get("/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
