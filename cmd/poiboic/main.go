package main

import (
	"os"

	"github.com/poiboi-lang/poiboic/cmd/poiboic/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
