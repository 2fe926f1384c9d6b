// Package main is the entry point of the ringside CLI.
package main

import (
	"github.com/huangsam/ringside/cmd"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/leaguedb"
)

func main() {
	cmd.SetStoreManager(leaguedb.Manager)
	err := cmd.Execute()
	leaguedb.CloseStores()
	if err != nil {
		contract.LogFatal("Error running ringside", err)
	}
}
