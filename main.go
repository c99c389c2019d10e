package main

import (
	"github.com/maxgio92/stackmark/pkg/cmd"
)

func main() {
	cmd.Execute()
}
