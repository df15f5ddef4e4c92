package main

import "github.com/promoplay/eggdraw/internal/cli"

func main() {
	cli.Execute()
}
