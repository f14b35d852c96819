package main

import "github.com/polymaker/lp-bot/cmd"

func main() {
	cmd.Execute()
}
