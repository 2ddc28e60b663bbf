package main

import (
	"os"

	"github.com/lintang-b-s/osmrouter/cmd/osmroute/cli"
	_ "github.com/lintang-b-s/osmrouter/cmd/osmroute/info"
	_ "github.com/lintang-b-s/osmrouter/cmd/osmroute/route"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
