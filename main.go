// Package main is the entry point of dvs.
package main

import (
	"github.com/anisan-cli/dvs/cmd"
	"github.com/anisan-cli/dvs/config"
	"github.com/anisan-cli/dvs/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
