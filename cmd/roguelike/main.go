package main

import "log"

import "github.com/hajimehoshi/ebiten/v2"

import "quicksilver-roguelike/game"

func main() {
	config := game.DefaultConfig()
	demo, err := game.New(config)
	if err != nil {
		log.Fatalf("initialization failed: %s", err.Error())
	}

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	err = ebiten.RunGame(demo)
	if err != nil { log.Fatal(err) }
}
