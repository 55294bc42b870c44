// Command roster manages person records stored in a Cupboard.
package main

import "github.com/mesh-intelligence/roster/internal/cli"

func main() {
	cli.Execute()
}
