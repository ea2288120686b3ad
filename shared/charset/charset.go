// Package charset defines the ASCII character classes rstr draws from.
package charset

import "github.com/thirukguru/rstr/model"

// Class is an inclusive range of ASCII code points.
type Class struct {
	Name string
	Lo   byte
	Hi   byte
}

var (
	Lower   = Class{Name: "lcase", Lo: 'a', Hi: 'z'}
	Upper   = Class{Name: "ucase", Lo: 'A', Hi: 'Z'}
	Digit   = Class{Name: "digit", Lo: '0', Hi: '9'}
	Special = Class{Name: "special", Lo: '!', Hi: '/'}
)

// Contains reports whether b falls inside the class.
func (c Class) Contains(b byte) bool {
	return b >= c.Lo && b <= c.Hi
}

// Len returns the number of characters in the class.
func (c Class) Len() int {
	return int(c.Hi-c.Lo) + 1
}

// Chars returns every character of the class in code point order.
func (c Class) Chars() string {
	out := make([]byte, 0, c.Len())
	for b := int(c.Lo); b <= int(c.Hi); b++ {
		out = append(out, byte(b))
	}

	return string(out)
}

// Enabled returns the classes switched on in cfg.
func Enabled(cfg model.Config) []Class {
	var classes []Class
	if cfg.Lower {
		classes = append(classes, Lower)
	}
	if cfg.Upper {
		classes = append(classes, Upper)
	}
	if cfg.Digit {
		classes = append(classes, Digit)
	}
	if cfg.Special {
		classes = append(classes, Special)
	}

	return classes
}

// AcceptTable maps every byte value to whether it belongs to one of the
// classes enabled in cfg. Bytes outside the four classes are never accepted.
func AcceptTable(cfg model.Config) [256]bool {
	var table [256]bool
	for _, class := range Enabled(cfg) {
		for b := int(class.Lo); b <= int(class.Hi); b++ {
			table[b] = true
		}
	}

	return table
}
