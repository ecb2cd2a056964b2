package main

import "github.com/V3lvetStorm/pyweather/internal/cli"

func main() {
	cli.Execute()
}
