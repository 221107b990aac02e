package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/stages"
)

func main() {
	stageName := flag.String("stage", "stage1", "stage to play")
	seed := flag.Int64("seed", 0, "replay seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "debug overlay and prefab hot reload")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := prefabs.LoadArchetypes(); err != nil {
		log.Printf("archetypes: %v", err)
	}
	stages.Register()

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("danmaku")
	ebiten.SetTPS(common.TPS)

	log.Printf("stage %s, seed %d", *stageName, *seed)
	if err := ebiten.RunGame(NewGame(*stageName, *seed, *debug)); err != nil {
		log.Fatal(err)
	}
}
