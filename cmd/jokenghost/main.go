package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"joken-ghost/internal/audio"
	"joken-ghost/internal/content"
	"joken-ghost/internal/game"
	"joken-ghost/internal/tui"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	// The screen owns the terminal; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if path := os.Getenv("JOKENGHOST_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	c, err := content.LoadOrDefault(os.Getenv("JOKENGHOST_CONTENT"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load content: %v, using %s\n", err, c.Name)
	}

	var seed int64
	if s := os.Getenv("JOKENGHOST_SEED"); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid JOKENGHOST_SEED %q: %v\n", s, err)
			os.Exit(1)
		}
	}

	name := os.Getenv("USER")
	if name == "" {
		name = "Hunter"
	}
	rng := game.NewRNG(seed)
	log.Printf("Battle seed %d", rng.Seed())
	sess := game.NewSession(c.Config(rng, name))

	sound := audio.NewPlayer(0.5)
	if err := sound.Init(); err != nil {
		// Non-fatal, the battle runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	tui.NewApp(screen, sess, c, sound).Run()
}
