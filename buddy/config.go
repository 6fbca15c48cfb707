package buddy

import s "github.com/bnclabs/gosettings"

// Minorder lower limit for the "minorder" setting, keeps page
// addresses aligned to at least 64-bit.
const Minorder = int64(3)

// Maxorder upper limit for the "maxorder" setting, bounds arena
// capacity at 1TB.
const Maxorder = int64(40)

// Buddy configurable parameters and default settings.
//
// "minorder" (int64, default: 12)
//
//	Page size exponent, pages are 2^minorder bytes. Requests
//	smaller than a page round up to a page.
//
// "maxorder" (int64, default: 20)
//
//	Arena size exponent, arena capacity is 2^maxorder bytes.
func Defaultsettings() s.Settings {
	return s.Settings{
		"minorder": int64(12),
		"maxorder": int64(20),
	}
}

func validatesettings(minorder, maxorder int64) {
	if minorder < Minorder {
		panicerr("minorder(%v) < %v", minorder, Minorder)
	} else if maxorder > Maxorder {
		panicerr("maxorder(%v) > %v", maxorder, Maxorder)
	} else if minorder > maxorder {
		panicerr("minorder(%v) > maxorder(%v)", minorder, maxorder)
	}
}
