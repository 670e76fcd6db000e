package main

import (
	"github.com/go-imsto/imbench/cmd"
)

func main() {
	cmd.Main()
}
