package main

import (
	"golfr-rankings/cmd/fetch-rankings/commands"
	"golfr-rankings/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
