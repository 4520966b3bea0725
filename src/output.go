package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/narender/product-console/src/models"
)

func printProduct(w io.Writer, p models.Product) {
	fmt.Fprintf(w, "%d  %s  $%s\n", p.ID, p.Name, p.Price.String())
}

func printProducts(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products yet")
		return
	}
	for _, p := range products {
		printProduct(w, p)
	}
}

// terminalConfirmer asks on the terminal. Anything but y/yes, including EOF, is a no.
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (t terminalConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
