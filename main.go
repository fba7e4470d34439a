// main is the entry point for the pdpboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/pdpboard/cmd"
	"github.com/huangsam/pdpboard/internal/publish"
)

func main() {
	err := cmd.Execute()
	publish.ClosePublishing()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
