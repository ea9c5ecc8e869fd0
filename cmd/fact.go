package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"skylight/facts"
)

func factCmd() *cli.Command {
	return &cli.Command{
		Name:        "fact",
		Usage:       "Print a random astronomy fact",
		Description: `Prints one fact selected uniformly at random from the built-in list.`,
		Action: func(ctx *cli.Context) error {
			fmt.Println(facts.New().Pick())
			return nil
		},
	}
}
