// Package chemistry provides the periodic table lookup and the
// molar-mass formula parser behind the chemistry command.
package chemistry

import (
	"strings"

	"github.com/holoterm/holoterm/internal/errors"
)

// Element holds the static facts shown for a periodic table lookup.
type Element struct {
	Symbol       string
	Name         string
	AtomicNumber int
	AtomicMass   float64
	Category     string
}

// table is keyed by canonical symbol casing. Lookups normalize first.
var table = map[string]Element{
	"H":  {"H", "Hydrogen", 1, 1.008, "nonmetal"},
	"He": {"He", "Helium", 2, 4.003, "noble gas"},
	"Li": {"Li", "Lithium", 3, 6.94, "alkali metal"},
	"Be": {"Be", "Beryllium", 4, 9.012, "alkaline earth metal"},
	"B":  {"B", "Boron", 5, 10.81, "metalloid"},
	"C":  {"C", "Carbon", 6, 12.011, "nonmetal"},
	"N":  {"N", "Nitrogen", 7, 14.007, "nonmetal"},
	"O":  {"O", "Oxygen", 8, 15.999, "nonmetal"},
	"F":  {"F", "Fluorine", 9, 18.998, "halogen"},
	"Ne": {"Ne", "Neon", 10, 20.180, "noble gas"},
	"Na": {"Na", "Sodium", 11, 22.990, "alkali metal"},
	"Mg": {"Mg", "Magnesium", 12, 24.305, "alkaline earth metal"},
	"Al": {"Al", "Aluminium", 13, 26.982, "post-transition metal"},
	"Si": {"Si", "Silicon", 14, 28.085, "metalloid"},
	"P":  {"P", "Phosphorus", 15, 30.974, "nonmetal"},
	"S":  {"S", "Sulfur", 16, 32.06, "nonmetal"},
	"Cl": {"Cl", "Chlorine", 17, 35.45, "halogen"},
	"Ar": {"Ar", "Argon", 18, 39.948, "noble gas"},
	"K":  {"K", "Potassium", 19, 39.098, "alkali metal"},
	"Ca": {"Ca", "Calcium", 20, 40.078, "alkaline earth metal"},
	"Sc": {"Sc", "Scandium", 21, 44.956, "transition metal"},
	"Ti": {"Ti", "Titanium", 22, 47.867, "transition metal"},
	"V":  {"V", "Vanadium", 23, 50.942, "transition metal"},
	"Cr": {"Cr", "Chromium", 24, 51.996, "transition metal"},
	"Mn": {"Mn", "Manganese", 25, 54.938, "transition metal"},
	"Fe": {"Fe", "Iron", 26, 55.845, "transition metal"},
	"Co": {"Co", "Cobalt", 27, 58.933, "transition metal"},
	"Ni": {"Ni", "Nickel", 28, 58.693, "transition metal"},
	"Cu": {"Cu", "Copper", 29, 63.546, "transition metal"},
	"Zn": {"Zn", "Zinc", 30, 65.38, "transition metal"},
	"Ga": {"Ga", "Gallium", 31, 69.723, "post-transition metal"},
	"Ge": {"Ge", "Germanium", 32, 72.630, "metalloid"},
	"As": {"As", "Arsenic", 33, 74.922, "metalloid"},
	"Se": {"Se", "Selenium", 34, 78.971, "nonmetal"},
	"Br": {"Br", "Bromine", 35, 79.904, "halogen"},
	"Kr": {"Kr", "Krypton", 36, 83.798, "noble gas"},
	"Ag": {"Ag", "Silver", 47, 107.868, "transition metal"},
	"Sn": {"Sn", "Tin", 50, 118.710, "post-transition metal"},
	"I":  {"I", "Iodine", 53, 126.904, "halogen"},
	"Ba": {"Ba", "Barium", 56, 137.327, "alkaline earth metal"},
	"W":  {"W", "Tungsten", 74, 183.84, "transition metal"},
	"Pt": {"Pt", "Platinum", 78, 195.084, "transition metal"},
	"Au": {"Au", "Gold", 79, 196.967, "transition metal"},
	"Hg": {"Hg", "Mercury", 80, 200.592, "transition metal"},
	"Pb": {"Pb", "Lead", 82, 207.2, "post-transition metal"},
	"U":  {"U", "Uranium", 92, 238.029, "actinide"},
}

// Lookup finds an element by symbol, case-insensitively.
func Lookup(symbol string) (Element, bool) {
	e, ok := table[canonical(symbol)]
	return e, ok
}

// canonical normalizes user casing: "fe", "FE" and "Fe" all hit Fe.
func canonical(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	symbol = strings.ToLower(symbol)
	return strings.ToUpper(symbol[:1]) + symbol[1:]
}

// ElementCount is one parsed (symbol, count) pair of a chemical formula.
type ElementCount struct {
	Symbol string
	Count  int
}

// ParseFormula scans a chemical formula like "C6H12O6" into its
// (symbol, count) pairs. A symbol is a capital letter optionally
// followed by one lowercase letter, with an optional digit count
// defaulting to 1. Anything the scan cannot consume, and any symbol not
// in the table, is an error naming the offender.
func ParseFormula(formula string) ([]ElementCount, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, errors.Usage("empty chemical formula")
	}

	var parts []ElementCount
	i := 0
	for i < len(formula) {
		c := formula[i]
		if c < 'A' || c > 'Z' {
			return nil, errors.Evaluationf("unexpected character %q in formula %q", c, formula)
		}

		sym := string(c)
		i++
		if i < len(formula) && formula[i] >= 'a' && formula[i] <= 'z' {
			sym += string(formula[i])
			i++
		}

		count := 0
		digits := 0
		for i < len(formula) && formula[i] >= '0' && formula[i] <= '9' {
			count = count*10 + int(formula[i]-'0')
			i++
			digits++
		}
		if digits == 0 {
			// An absent count means one atom; a literal zero does not.
			count = 1
		} else if count == 0 {
			return nil, errors.Evaluationf("zero count for element %q in formula %q", sym, formula)
		}

		if _, ok := table[sym]; !ok {
			return nil, errors.NotFoundf("unknown element symbol %q in formula %q", sym, formula)
		}

		parts = append(parts, ElementCount{Symbol: sym, Count: count})
	}

	return parts, nil
}

// MolarMass computes the molar mass of a formula in g/mol.
func MolarMass(formula string) (float64, error) {
	parts, err := ParseFormula(formula)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range parts {
		total += table[p.Symbol].AtomicMass * float64(p.Count)
	}
	return total, nil
}
