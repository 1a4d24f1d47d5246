package main

import (
	"github.com/leocov-dev/packmedic/cmd"
	"github.com/leocov-dev/packmedic/config"
)

var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
