package main

import "github.com/moyu-x/batch-rename/cmd"

func main() {
	cmd.Execute()
}
