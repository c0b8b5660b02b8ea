package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cricklet/chesskit/internal/board"
	. "github.com/cricklet/chesskit/internal/helpers"
	"github.com/cricklet/chesskit/internal/runner"
	"github.com/pkg/profile"
)

func printState(r *runner.GameRunner) {
	fmt.Println()
	fmt.Println(r.Board.Unicode())

	if captures := r.Board.CapturesString(); captures != "" {
		fmt.Println(captures)
	}
	if history := r.Board.HistoryString(); history != "" {
		fmt.Println(history)
	}

	if r.GameOver() {
		status, reason := r.Status()
		fmt.Printf("game over: %v by %v\n", status, reason)
		return
	}

	if r.InCheck() {
		fmt.Printf("%v is in check\n", r.Player())
	}
	fmt.Printf("%v to move\n", r.Player())
}

func showMoves(r *runner.GameRunner, square string) {
	location, err := FileRankFromString(square)
	if !IsNil(err) {
		fmt.Println("cannot parse", square)
		return
	}

	moves, err := r.Select(location)
	if !IsNil(err) {
		fmt.Println(err.Error())
		return
	}
	if len(moves) == 0 {
		fmt.Println("no legal moves for", square)
		return
	}

	fmt.Println(strings.Join(MapSlice(moves, func(to FileRank) string {
		return to.String()
	}), " "))
}

func promptPromotion(r *runner.GameRunner, scanner *bufio.Scanner) {
	for r.PendingPromotion().HasValue() {
		fmt.Print("promote to (Q/R/B/N)? ")
		if !scanner.Scan() {
			return
		}
		kind := PieceTypeFromLetter(strings.TrimSpace(scanner.Text()))
		if kind == Pawn || kind == King || !kind.IsValid() {
			fmt.Println("pick one of Q, R, B, N")
			continue
		}
		if _, err := r.PerformPromotion(kind); !IsNil(err) {
			fmt.Println(err.Error())
		}
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	r := runner.NewGameRunner(runner.WithLogger(&DefaultLogger))
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("moves are coordinates like e2e4 (a7a8=Q to promote)")
	fmt.Println("commands: moves <square>, undo, reset, forfeit, quit")
	printState(r)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case input == "quit" || input == "q":
			return
		case input == "undo":
			r.Rewind(1)
			printState(r)
		case input == "reset":
			r.Reset()
			printState(r)
		case input == "forfeit":
			r.Forfeit()
			printState(r)
		case strings.HasPrefix(input, "moves "):
			showMoves(r, strings.TrimPrefix(input, "moves "))
		default:
			if handleMove(r, input, scanner) {
				printState(r)
			}
		}
	}
}

func handleMove(r *runner.GameRunner, input string, scanner *bufio.Scanner) bool {
	// a bare pawn push onto the last rank parks a promotion; route it
	// through the selection flow so the user gets prompted for the kind
	if len(input) == 4 && !strings.Contains(input, "=") {
		from, fromErr := FileRankFromString(input[0:2])
		to, toErr := FileRankFromString(input[2:4])
		if IsNil(fromErr) && IsNil(toErr) {
			piece := r.Board.PieceAt(from)
			if piece != nil && piece.IsPawn() && to.Rank == board.PromotionRank(piece.Color) {
				if _, err := r.Select(from); !IsNil(err) {
					fmt.Println(err.Error())
					return false
				}
				if _, err := r.PerformMove(to); !IsNil(err) {
					fmt.Println(err.Error())
					return false
				}
				promptPromotion(r, scanner)
				return true
			}
		}
	}

	if _, err := r.PerformMoveFromString(input); !IsNil(err) {
		fmt.Println(err.Error())
		return false
	}
	return true
}
