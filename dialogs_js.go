//go:build js

package main

import (
	"log"

	"github.com/olivierh59500/photoelectric-go/internal/loop"
)

// prompter has no native dialogs in the browser; the keyboard controls
// still work.
type prompter struct{}

func newPrompter(*loop.Driver) *prompter {
	return &prompter{}
}

func (p *prompter) wavelength() { p.unavailable() }

func (p *prompter) intensity() { p.unavailable() }

func (p *prompter) material() { p.unavailable() }

func (p *prompter) unavailable() {
	log.Printf("dialogs are not available in the browser, use the arrow and number keys")
}
