package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"classy-weather/cmd/classy-weather/commands"
	"classy-weather/pkg/log"
)

func main() {
	err := commands.Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
