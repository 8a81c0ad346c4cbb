// Command bindgen generates the code that registers Bind annotations found
// in doc comments, so that annobind can see them at run time.
//
// Typical use is from a go:generate directive in the annotated package:
//
//	//go:generate bindgen generate .
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
