package main

import (
	"github.com/volcanolab/wws/cmd"
)

func main() {
	cmd.Execute()
}
