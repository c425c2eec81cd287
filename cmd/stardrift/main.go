package main

import (
	"github.com/stardrift-game/stardrift/internal/cli"
)

func main() {
	cli.Execute()
}
