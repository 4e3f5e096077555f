package main

import (
	"fmt"
	"os"

	"github.com/hannguyen0712/credit-scorecerer/cmd/advise"
	"github.com/hannguyen0712/credit-scorecerer/cmd/cards"
	"github.com/hannguyen0712/credit-scorecerer/cmd/consult"
	"github.com/hannguyen0712/credit-scorecerer/cmd/pay"
	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/cmd/score"
)

func init() {
	root.Cmd.AddCommand(consult.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(cards.Cmd)
	root.Cmd.AddCommand(score.Cmd)
	root.Cmd.AddCommand(pay.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
