package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/cricklet/chesskit/internal/board"
	. "github.com/cricklet/chesskit/internal/helpers"
	"github.com/cricklet/chesskit/internal/runner"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// UpdateToWeb is the full game view pushed after every state change; the web
// client is a dumb renderer.
type UpdateToWeb struct {
	Board            [8][8]string `json:"board"`
	Player           string       `json:"player"`
	Check            bool         `json:"check"`
	Status           string       `json:"status"`
	StatusReason     string       `json:"statusReason"`
	Selection        string       `json:"selection"`
	PossibleMoves    []string     `json:"possibleMoves"`
	PendingPromotion string       `json:"pendingPromotion"`
	LastMove         string       `json:"lastMove"`
	History          []string     `json:"history"`
	CapturedWhite    []string     `json:"capturedWhite"`
	CapturedBlack    []string     `json:"capturedBlack"`
}

type MessageFromWeb struct {
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Promote   *string `json:"promote"`
	Rewind    *int    `json:"rewind"`
	Forfeit   *bool   `json:"forfeit"`
	Reset     *bool   `json:"reset"`
}

func (m MessageFromWeb) String() string {
	if m.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *m.Selection)
	}
	if m.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *m.Move)
	}
	if m.Promote != nil {
		return fmt.Sprint("MessageFromWeb Promote: ", *m.Promote)
	}
	if m.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *m.Rewind)
	}
	if m.Forfeit != nil {
		return fmt.Sprint("MessageFromWeb Forfeit: ", *m.Forfeit)
	}
	if m.Reset != nil {
		return fmt.Sprint("MessageFromWeb Reset: ", *m.Reset)
	}
	return "MessageFromWeb unknown"
}

var _pieceCodes = [2]string{"w", "b"}

func boardLayout(b *board.Board) [8][8]string {
	layout := [8][8]string{}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(FileRank{File: File(file), Rank: Rank(rank)})
			if piece == nil {
				continue
			}
			letter := piece.Kind.Letter()
			if piece.Kind == Pawn {
				letter = "P"
			}
			layout[rank][file] = _pieceCodes[piece.Color] + letter
		}
	}
	return layout
}

func pieceStrings(pieces []*board.Piece) []string {
	return MapSlice(pieces, func(p *board.Piece) string {
		return p.Kind.String()
	})
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	var upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	var ws = func(w http.ResponseWriter, req *http.Request) {
		c, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			panic(err)
		}
		defer c.Close()

		logger := &DefaultLogger
		game := runner.NewGameRunner(runner.WithLogger(logger))

		var sendUpdate = func(update UpdateToWeb) {
			update.Board = boardLayout(game.Board)
			update.Player = game.Player().String()
			update.Check = game.InCheck()
			status, reason := game.Status()
			update.Status = status.String()
			update.StatusReason = reason
			if selection := game.Selection(); selection.HasValue() {
				update.Selection = selection.Value().String()
			}
			if pending := game.PendingPromotion(); pending.HasValue() {
				update.PendingPromotion = pending.Value().String()
			}
			if len(game.Board.History) > 0 {
				update.LastMove = game.Board.History[len(game.Board.History)-1].Algebraic()
			}
			update.History = MapSlice(game.Board.History, board.Move.Algebraic)
			update.CapturedWhite = pieceStrings(game.Board.CapturedWhite)
			update.CapturedBlack = pieceStrings(game.Board.CapturedBlack)

			bytes, jsonErr := json.Marshal(update)
			if jsonErr != nil {
				logger.Println("update: json marshal:", jsonErr)
				return
			}
			if writeErr := c.WriteMessage(websocket.TextMessage, bytes); writeErr != nil {
				logger.Println("websocket:", writeErr)
			}
		}

		var handleMessageFromWeb = func(bytes []byte) {
			var message MessageFromWeb
			if jsonErr := json.Unmarshal(bytes, &message); jsonErr != nil {
				logger.Println("handleMessageFromWeb: json unmarshal:", jsonErr)
				return
			}
			logger.Println("received", message)

			var update UpdateToWeb

			if message.Selection != nil {
				square, err := FileRankFromString(*message.Selection)
				if !IsNil(err) {
					logger.Println("selection:", err)
				} else {
					moves, err := game.Select(square)
					if !IsNil(err) {
						logger.Println("selection:", err)
					}
					update.PossibleMoves = MapSlice(moves, func(to FileRank) string {
						return to.String()
					})
				}
			} else if message.Move != nil {
				if _, err := game.PerformMoveFromString(*message.Move); !IsNil(err) {
					logger.Println("perform:", *message.Move, err)
				}
			} else if message.Promote != nil {
				kind := PieceTypeFromLetter(*message.Promote)
				if _, err := game.PerformPromotion(kind); !IsNil(err) {
					logger.Println("promote:", *message.Promote, err)
				}
			} else if message.Rewind != nil {
				game.Rewind(*message.Rewind)
			} else if message.Forfeit != nil && *message.Forfeit {
				game.Forfeit()
			} else if message.Reset != nil && *message.Reset {
				game.Reset()
			}

			sendUpdate(update)
		}

		sendUpdate(UpdateToWeb{})
		for {
			_, message, readErr := c.ReadMessage()
			if readErr != nil {
				logger.Printf("read: %v", readErr)
				break
			}
			handleMessageFromWeb(message)
		}
	}

	port := 8002
	for _, arg := range os.Args[1:] {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		}
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", ws)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("static")))

	fmt.Println("serving at", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%v", port), router); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
