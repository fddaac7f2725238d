package main

import (
	"stockbook/cmd"
	"stockbook/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
