// SPDX-License-Identifier: MIT

// Command commodel builds and solves metabolic community models.
//
//	commodel toy -o dir [--random]            write member models and a descriptor
//	commodel build balanced|fixed|redcom      assemble a community model
//	commodel fba model.json                   plain flux balance analysis
//	commodel redcom model.json --mu 0.5       RedCom FBA
//	commodel minimal model.json --mu 0.5      minimal-species search
//	commodel dg0 convert|coverage             dG0 metadata tools
//	commodel scope model.json                 network expansion from the uptakes
//	commodel runs                             list stored runs
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := RootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
