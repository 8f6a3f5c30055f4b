/*
Package creational is a small catalog of the classic creational design patterns:
Builder, Factory Method, Abstract Factory and Prototype.

Each pattern lives in its own package under pkg/ with deliberately trivial
products (computers, hamburgers, reports, vehicles, documents). This package
ties them together behind an Engine so the CLI, the HTTP server and the MCP
server all create products, log and count them the same way.

# Concept

Products never print. They describe themselves as colors.Line values and the
host decides how to show them: a colors.Printer on a terminal, JSON over HTTP,
plain text over MCP.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/creational"
	)

	func main() {
		ctx := context.Background()
		eng, err := creational.New(ctx)
		if err != nil {
			log.Fatal(err)
		}

		out, err := eng.OrderHamburger("chicken")
		if err != nil {
			log.Fatal(err) // unknown selectors wrap domain.ErrInvalidOption
		}
		for _, line := range out.Text() {
			fmt.Println(line)
		}
	}
*/
package creational
