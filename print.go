package igor

import (
	"fmt"
	"io"
)

// Print writes the textual representation of v to w.
func Print(w io.Writer, v Value) error {
	_, err := io.WriteString(w, v.String())
	return err
}

// Println writes the textual representation of v and a newline to w.
func Println(w io.Writer, v Value) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}
