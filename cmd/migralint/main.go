// Copyright © 2026 migralint authors

package main

import (
	"github.com/migralint/migralint/cmd/migralint/cmd"
)

func main() {
	cmd.Execute()
}
