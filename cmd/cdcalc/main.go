package main

import "github.com/DoyleJ11/lol-cooldown-tracker/internal/cli"

func main() {
	cli.Execute()
}
