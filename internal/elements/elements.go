// Package elements loads the periodic table dataset: one immutable record per element.
package elements

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed data/elements.json
var embedded []byte

var (
	// ErrEmpty is returned when a dataset holds no elements.
	ErrEmpty = errors.New("dataset has no elements")
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid element")
)

// Element is one row of the dataset. XPos/YPos are the 1-based column and row in the
// classic periodic table layout.
type Element struct {
	Number       int     `json:"number"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AtomicMass   float64 `json:"atomic_mass"`
	DiscoveredBy string  `json:"discovered_by"`
	XPos         int     `json:"xpos"`
	YPos         int     `json:"ypos"`
}

// Dataset is the decoded document. Element order is the card order.
type Dataset struct {
	Elements []Element `json:"elements"`
}

// Len returns the number of elements.
func (d *Dataset) Len() int {
	return len(d.Elements)
}

// BySymbol returns the index of the element with the given symbol.
func (d *Dataset) BySymbol(symbol string) (int, bool) {
	for i, e := range d.Elements {
		if e.Symbol == symbol {
			return i, true
		}
	}
	return -1, false
}

// ByNumber returns the index of the element with the given atomic number.
func (d *Dataset) ByNumber(number int) (int, bool) {
	for i, e := range d.Elements {
		if e.Number == number {
			return i, true
		}
	}
	return -1, false
}

// Parse decodes and validates a dataset.
func Parse(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads the dataset at path. An empty path loads the embedded 118-element table.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(bytes.NewReader(embedded))
}

// Validate checks that numbers are exactly 1..N and that every element has a symbol,
// a name, and a grid cell of its own.
func (d *Dataset) Validate() error {
	n := len(d.Elements)
	if n == 0 {
		return ErrEmpty
	}
	numbers := make(map[int]bool, n)
	type cell struct{ x, y int }
	cells := make(map[cell]string, n)
	for i, e := range d.Elements {
		switch {
		case e.Number < 1 || e.Number > n:
			return fmt.Errorf("%w: entry %d: number %d outside 1..%d", ErrInvalid, i, e.Number, n)
		case numbers[e.Number]:
			return fmt.Errorf("%w: entry %d: duplicate number %d", ErrInvalid, i, e.Number)
		case e.Symbol == "":
			return fmt.Errorf("%w: number %d: missing symbol", ErrInvalid, e.Number)
		case e.Name == "":
			return fmt.Errorf("%w: number %d: missing name", ErrInvalid, e.Number)
		case e.XPos < 1 || e.YPos < 1:
			return fmt.Errorf("%w: %s: grid position (%d,%d) must be 1-based", ErrInvalid, e.Symbol, e.XPos, e.YPos)
		}
		c := cell{e.XPos, e.YPos}
		if other, taken := cells[c]; taken {
			return fmt.Errorf("%w: %s: grid cell (%d,%d) already used by %s", ErrInvalid, e.Symbol, e.XPos, e.YPos, other)
		}
		numbers[e.Number] = true
		cells[c] = e.Symbol
	}
	return nil
}
