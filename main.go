package main

import (
	"os"

	"github.com/aayushdutt/zuluquery/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
