package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cricklet/chesskit/internal/board"
	. "github.com/cricklet/chesskit/internal/helpers"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

func countForDepth(depth int) (int, time.Duration, Error) {
	b := board.NewBoard()

	topLevel, err := b.CountTopLevelMoves(White)
	if !IsNil(err) {
		return 0, 0, err
	}

	bar := progressbar.Default(int64(topLevel), fmt.Sprintf("depth %v", depth))
	start := time.Now()
	count, err := b.CountPositions(White, depth, func(int) {
		_ = bar.Add(1)
	})
	elapsed := time.Since(start)
	_ = bar.Close()

	return count, elapsed, err
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	maxDepth := 5
	for _, arg := range os.Args[1:] {
		if arg == "profile" {
			p := profile.Start(profile.ProfilePath("."))
			defer p.Stop()
		} else if parsed, err := strconv.Atoi(arg); err == nil {
			maxDepth = parsed
		}
	}

	for depth := 1; depth <= maxDepth; depth++ {
		count, elapsed, err := countForDepth(depth)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		perSecond := int64(float64(count) / elapsed.Seconds())
		fmt.Printf("depth %v: %v positions in %v (%v / s)\n",
			depth, humanize.Comma(int64(count)), elapsed.Round(time.Millisecond), humanize.Comma(perSecond))
	}
}
