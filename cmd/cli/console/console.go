package console

import "io"

type Console struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
