package tilde

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// --- Argument conversion ---
//
// The accepted argument set is closed: integers (including big.Int), floats,
// strings, and sequences. Directives never duck-type beyond it.

func toBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return big.NewInt(int64(n)), true
	case uint16:
		return big.NewInt(int64(n)), true
	case uint32:
		return big.NewInt(int64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		return new(big.Int).Set(n), true
	case big.Int:
		return new(big.Int).Set(&n), true
	}
	return nil, false
}

func toInt(v any) (int, bool) {
	n, ok := toBigInt(v)
	if !ok || !n.IsInt64() {
		return 0, false
	}
	return int(n.Int64()), true
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	if n, ok := toBigInt(v); ok {
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}
	return 0, false
}

func toSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// --- Digit grouping and fixed-point ---

// groupDigits inserts sep between groups of size digits, counting from the
// right. A leading sign is left untouched.
func groupDigits(s, sep string, size int) string {
	if size <= 0 || sep == "" {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= size {
		return sign + s
	}
	var sb strings.Builder
	sb.WriteString(sign)
	first := len(s) % size
	if first > 0 {
		sb.WriteString(s[:first])
	}
	for i := first; i < len(s); i += size {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s[i : i+size])
	}
	return sb.String()
}

func formatFixed(f float64, digits int, forceSign bool, point string) string {
	s := strconv.FormatFloat(f, 'f', digits, 64)
	if forceSign && f >= 0 {
		s = "+" + s
	}
	if point != "." {
		s = strings.Replace(s, ".", point, 1)
	}
	return s
}

// --- English number names ---

var onesNames = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensNames = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scaleNames names each group of three digits. The last entry, vigintillion,
// is 10^63, so numbers below 10^66 have names.
var scaleNames = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion",
	"decillion", "undecillion", "duodecillion", "tredecillion",
	"quattuordecillion", "quindecillion", "sexdecillion", "septendecillion",
	"octodecillion", "novemdecillion", "vigintillion",
}

// smallCardinal spells n for 1 <= n <= 999.
func smallCardinal(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesNames[n/100], "hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, onesNames[n])
	case n%10 == 0:
		parts = append(parts, tensNames[n/10])
	default:
		parts = append(parts, tensNames[n/10]+"-"+onesNames[n%10])
	}
	return strings.Join(parts, " ")
}

// cardinal spells n in English: "one million two hundred thirty-four
// thousand five hundred sixty-seven".
func cardinal(n *big.Int) (string, error) {
	if n.Sign() == 0 {
		return "zero", nil
	}
	digits := n.Text(10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	groups := (len(digits) + 2) / 3
	if groups > len(scaleNames) {
		return "", fmt.Errorf("%s exceeds the largest named scale (vigintillion)", n)
	}
	var parts []string
	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	i := 0
	for g := groups - 1; g >= 0; g-- {
		end := i + rem
		rem = 3
		group, _ := strconv.Atoi(digits[i:end])
		i = end
		if group == 0 {
			continue
		}
		parts = append(parts, smallCardinal(group))
		if g > 0 {
			parts = append(parts, scaleNames[g])
		}
	}
	s := strings.Join(parts, " ")
	if negative {
		s = "negative " + s
	}
	return s, nil
}

// ordinalSpecial maps cardinal words whose ordinal is irregular.
var ordinalSpecial = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// ordinal spells n as an English ordinal: "one hundred twenty-third".
func ordinal(n *big.Int) (string, error) {
	if n.Sign() == 0 {
		return "zeroth", nil
	}
	s, err := cardinal(n)
	if err != nil {
		return "", err
	}
	// Only the final word changes.
	cut := strings.LastIndexAny(s, " -")
	head, last := "", s
	if cut >= 0 {
		head, last = s[:cut+1], s[cut+1:]
	}
	switch {
	case ordinalSpecial[last] != "":
		last = ordinalSpecial[last]
	case strings.HasSuffix(last, "y"):
		last = last[:len(last)-1] + "ieth"
	default:
		last += "th"
	}
	return head + last, nil
}

// --- Roman numerals ---

var (
	romanValues = []int64{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanDigits = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	oldRomanValues = []int64{1000, 500, 100, 50, 10, 5, 1}
	oldRomanDigits = []string{"M", "D", "C", "L", "X", "V", "I"}
)

// roman renders n in uppercase Roman numerals. The modern subtractive style
// covers 1..3999; the old additive style (old=true, fours as IIII) covers
// 1..4999.
func roman(n int64, old bool) (string, error) {
	limit := int64(3999)
	values, symbols := romanValues, romanDigits
	if old {
		limit = 4999
		values, symbols = oldRomanValues, oldRomanDigits
	}
	if n < 1 || n > limit {
		return "", errors.New("Roman numerals cover 1.." + strconv.FormatInt(limit, 10))
	}
	var sb strings.Builder
	for i, v := range values {
		for n >= v {
			sb.WriteString(symbols[i])
			n -= v
		}
	}
	return sb.String(), nil
}
