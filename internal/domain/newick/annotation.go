package newick

// nameStops are the bytes that may not appear in an annotation name before
// the '='. Hitting one of them while scanning a name is a structural error.
const nameStops = `,]"{}`

// parseAnnotations parses a comma-separated name=value list positioned
// immediately after "[&", up to and including the terminating ']'. base is
// the absolute input offset of s, used only for error positions.
//
// Value forms: "..." and {...} run to the matching unescaped closer with the
// delimiters excluded (embedded escaped delimiters and commas are kept
// verbatim); a bare value runs to the next ',' or the terminating ']'.
//
// Returns the ordered pairs and the total number of bytes consumed. On
// failure nothing partial is returned.
func parseAnnotations(s string, base int) ([]Annotation, int, error) {
	var pairs []Annotation
	eat := 0
	for {
		if eat >= len(s) {
			return nil, 0, &ParseError{Offset: base + eat, Msg: "unterminated annotation block"}
		}
		if s[eat] == ']' {
			return pairs, eat + 1, nil
		}
		if s[eat] == ',' {
			eat++
		}

		rest := s[eat:]
		nameEnd := findIndex(rest, '=', nameStops)
		if nameEnd < 0 || rest[nameEnd] != '=' {
			return nil, 0, &ParseError{Offset: base + eat, Msg: "annotation entry missing '='"}
		}
		name := rest[:nameEnd]
		eat += nameEnd + 1

		if eat >= len(s) {
			return nil, 0, &ParseError{Offset: base + eat, Msg: "unterminated annotation block"}
		}

		var value string
		switch s[eat] {
		case '"', '{':
			closer := byte('"')
			what := "quoted"
			if s[eat] == '{' {
				closer = '}'
				what = "braced"
			}
			end := extractEscaped(s[eat+1:], closer)
			if end < 0 {
				return nil, 0, &ParseError{Offset: base + eat, Msg: "unterminated " + what + " value"}
			}
			value = s[eat+1 : eat+1+end]
			eat += end + 2
		default:
			end := findIndex(s[eat:], ',', "]")
			if end < 0 {
				return nil, 0, &ParseError{Offset: base + eat, Msg: "unterminated annotation block"}
			}
			value = s[eat : eat+end]
			eat += end
		}

		pairs = append(pairs, Annotation{Name: name, Value: value})
	}
}
