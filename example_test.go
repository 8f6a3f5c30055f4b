package creational_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/pkg/document"
)

func ExampleEngine_OrderHamburger() {
	eng, err := creational.New(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	out, err := eng.OrderHamburger("beef")
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range out.Text() {
		fmt.Println(line)
	}
	// Output:
	// Preparing a BeefHamburger 🍔🥩
}

func ExampleEngine_CloneDocument() {
	ctx := context.Background()
	eng, err := creational.New(ctx)
	if err != nil {
		log.Fatal(err)
	}

	out, err := eng.CloneDocument(ctx, "sample", document.Overrides{
		Title:  "Design Patterns - Copy",
		Author: "María Gómez",
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range out.Text() {
		fmt.Println(line)
	}
	// Output:
	// Title: Design Patterns - Copy
	// Content: Content about design patterns...
	// Author: María Gómez
}
