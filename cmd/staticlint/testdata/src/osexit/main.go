package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")

	if len(os.Args) > 5 {
		os.Exit(2) // want "os.Exit should not be called in main function"
	}

	defer func() {
		os.Exit(0)
	}()

	os.Exit(1) // want "os.Exit should not be called in main function"
}

func stop() {
	os.Exit(1)
}
