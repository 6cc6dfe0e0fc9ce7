// Command wccbench builds a synthetic graph and times one weakly-
// connected-components variant, selected by --variant, over it.
package main

import (
	"github.com/katalvlaran/wccgraph/cmd/wccbench/commands"
)

func main() {
	commands.Execute()
}
