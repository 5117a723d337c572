package main

import "github.com/dotcommander/themelint/cmd"

func main() {
	cmd.Execute()
}
