// Package tilde renders text from directive templates in the style of
// Common Lisp's FORMAT.
//
// A template is ordinary text with embedded directives. Each directive starts
// with a tilde, carries optional prefix parameters and modifier flags, and
// ends with a single character naming the operation:
//
//	out, err := tilde.Format("~d item~p found", 3)
//	// "3 items found"
//
// The central entry points are [Format] and [Write]. Use [Parse] when the same
// template is rendered many times; a parsed [Template] is immutable and safe
// for concurrent use.
//
// # Directive Syntax
//
// A directive is ~[params][modifiers]kind. Prefix parameters are
// comma-separated: a decimal integer, a character written 'c, # for the
// number of remaining arguments, or v to take the value from the next
// argument. The modifiers : and @ may appear in any order, at most once each.
//
// # Basic Output
//
//   - ~a — render the argument as-is ([fmt.Stringer] is honored). Params:
//     mincol, padchar. Pads on the right; @ pads on the left.
//   - ~d — decimal integer. Params: mincol, padchar, groupchar, groupwidth.
//     : inserts digit grouping; @ forces a sign.
//   - ~f — fixed-point number. Params: width, digits, padchar. @ forces a
//     sign.
//
// # Numbers as Words
//
// ~r with a base parameter renders an integer in that radix (2–36). Without
// a parameter it spells the number out in English:
//
//	~r    → "forty-two"     (cardinal)
//	~:r   → "forty-second"  (ordinal)
//	~@r   → "xlii"          (Roman numerals)
//	~:@r  → "XXXXII"        (old-style Roman numerals)
//
// Cardinals and ordinals accept arbitrarily large integers, including
// [math/big.Int], up to the largest named scale (vigintillion). Roman
// numerals are range-checked and fail with [ErrInvalidArgumentType] outside
// their representable range.
//
// # Pluralization
//
// ~p emits "s" unless the argument equals 1. With @ it emits "y" or "ies".
// With : it backs up one argument first, so a value can be printed and then
// pluralized:
//
//	tilde.Format("~d dog~:p", 3) // "3 dogs"
//
// # Control Flow
//
//   - ~* — skip arguments forward (param, default 1); : skips backward;
//     @ jumps to an absolute position. Always clamped to the list bounds.
//   - ~[...~;...~] — conditional: an integer selector (consumed from the
//     arguments, or supplied as a prefix parameter, including #) picks a
//     clause by index. ~:; marks the final clause as the default; with no
//     default an out-of-range selector renders nothing.
//   - ~{...~} — iteration: consumes one sequence argument and runs the body
//     over its elements until they are exhausted, or for at most the prefix
//     parameter's count. With @ it iterates over the remaining top-level
//     arguments instead.
//   - ~^ — early exit: ends the current iteration pass and the loop when no
//     arguments remain. Outside an iteration it ends the whole render.
//
// The classic grocery-list example combines all of these:
//
//	tilde.Format("~{~d ~a~2:*~p~*~^, ~}", []any{12, "cat", 1, "bird", 3, "dog"})
//	// "12 cats, 1 bird, 3 dogs"
//
// # Layout
//
//   - ~t — pad to an absolute column with a fill character, measured in
//     display cells since the last newline. With @ the column is relative.
//   - ~<...~;...~> — justification: the rendered clauses are padded out to
//     the mincol parameter, with padding distributed across the clause
//     boundaries. A single clause is right-justified; : also pads before the
//     first clause and @ after the last.
//   - ~(...~) — case conversion: lowercases its body; : capitalizes each
//     word, @ capitalizes only the first, :@ uppercases.
//   - ~%, ~&, ~~ — newline, fresh line, and literal tilde.
//
// # Configuration
//
// Rendering defaults (digit group separator and width, pad character,
// decimal point) live in a [Config] that is threaded through evaluation —
// there is no global state. [DefaultConfig] returns the standard English
// conventions, [ConfigFromYAML] loads overrides from a YAML document, and
// [Config.Parse] binds a configuration to a template.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedDirective] — the template itself is invalid (parse time)
//   - [ErrArgumentExhausted] — a directive needed an argument past the end
//   - [ErrInvalidArgumentType] — a directive cannot render its argument
//
// Every failure is reported as a [*DirectiveError] carrying the byte offset
// of the offending directive; [errors.Is] matches the sentinel.
package tilde
