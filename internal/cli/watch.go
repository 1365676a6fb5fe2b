package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/mcoot/semantly-go/internal/model"
)

func newWatchCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "watch <code>",
		Short: "Stream live guess broadcasts for a game",
		Long: `Connect to the game's websocket endpoint and print each guess as it
is broadcast. Press Ctrl+C to disconnect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchGame(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

func watchGame(code string, jsonOutput bool) error {
	wsURL, err := websocketURL(cfg.ServerURL, code)
	if err != nil {
		return err
	}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", wsURL, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	fmt.Fprintf(os.Stderr, "Watching game %s (Ctrl+C to stop)\n", code)

	// Close the connection on interrupt so ReadMessage unblocks
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		if jsonOutput {
			fmt.Println(string(data))
			continue
		}

		var event model.GuessEvent
		if err := json.Unmarshal(data, &event); err != nil {
			fmt.Println(string(data))
			continue
		}

		score := 0.0
		if event.Guess.Score != nil {
			score = *event.Guess.Score
		}
		fmt.Printf("%s guessed %q: %.2f", event.Guess.Player, event.Guess.Guess, score)
		if event.GameWon {
			fmt.Print("  [game won]")
		}
		fmt.Println()
	}
}

// websocketURL converts the configured HTTP server URL into the ws://
// endpoint for a game code
func websocketURL(serverURL, code string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws/" + code
	return u.String(), nil
}
