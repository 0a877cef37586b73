// Command bookshop runs the interactive bookshop inventory manager.
package main

import "github.com/mesh-intelligence/bookshop/internal/cli"

func main() {
	cli.Execute()
}
