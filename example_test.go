package godeck_test

import (
	"fmt"
	"log"

	"github.com/godeck/godeck"
)

// Example_basic demonstrates building a small deck and reading it back.
func Example_basic() {
	pres, err := godeck.New(godeck.WithCreator("gopher"))
	if err != nil {
		log.Fatal(err)
	}

	// 1. Add a title slide
	slide, err := pres.AddSlide("Title Slide")
	if err != nil {
		log.Fatal(err)
	}
	if err := slide.SetTitle("Hello from Go"); err != nil {
		log.Fatal(err)
	}

	// 2. Round-trip through pptx bytes
	data, err := pres.Bytes()
	if err != nil {
		log.Fatal(err)
	}
	reloaded, err := godeck.FromBytes(data)
	if err != nil {
		log.Fatal(err)
	}

	first, err := reloaded.Slide(1)
	if err != nil {
		log.Fatal(err)
	}
	title, err := first.Title()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Slide 1 title: %s\n", title)
	// Output:
	// Slide 1 title: Hello from Go
}

// Example_outline demonstrates building a deck from a YAML outline.
func Example_outline() {
	outline, err := godeck.ParseOutline([]byte(`
title: Demo Deck
slides:
  - title: Agenda
    bullets:
      - First point
      - Second point
`))
	if err != nil {
		log.Fatal(err)
	}

	pres, err := godeck.Build(outline)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Built %d slides\n", pres.SlideCount())
	// Output:
	// Built 2 slides
}
