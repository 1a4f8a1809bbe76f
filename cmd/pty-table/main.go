package main

import "github.com/josepacelli/pty-table/cmd/pty-table/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
