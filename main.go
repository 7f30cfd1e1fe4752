// SPDX-License-Identifier: MPL-2.0

package main

import cmd "modgraph-cli/cmd/modgraph"

func main() {
	cmd.Execute()
}
