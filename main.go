package main

import "github.com/theirongolddev/goalsheet/cmd"

func main() {
	cmd.Execute()
}
