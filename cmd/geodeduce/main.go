// Command geodeduce runs the deduction engine's saturation loop over a
// rule file and one of the built-in demonstration scenarios. The
// construction front-end and problem-text parser are out of scope for
// this package and are stood in for by internal/constructiontest.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
