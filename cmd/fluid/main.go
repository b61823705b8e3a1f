// Command fluid builds the fluid dictionary and generates fluids from it.
//
//	fluid build      compile data/*.txt into pkg/fluid/dict.bin
//	fluid generate   print random fluids
//	fluid stats      print the dictionary report
//	fluid serve      serve fluids over HTTP
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], newCLI(os.Stdout, os.Stderr)))
}
