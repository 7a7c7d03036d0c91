package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tatianab/tradewinds/internal/tui"
)

func main() {
	captain := flag.String("captain", "", "captain name; skips the name form when set with -ship")
	ship := flag.String("ship", "", "ship name")
	flag.Parse()

	var err error
	if *captain != "" || *ship != "" {
		err = tui.StartAs(*captain, *ship)
	} else {
		err = tui.Start()
	}
	if err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
