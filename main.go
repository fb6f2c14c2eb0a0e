package main

import (
	"flag"

	"github.com/joshuarp/consent-bridge/internal/app"
)

var defaultBin string

func main() {
	bin := flag.String("bin", defaultBin, "select binary: link|dataflow|consent (default: all)")
	flag.Parse()

	app.New(*bin).Run()
}
