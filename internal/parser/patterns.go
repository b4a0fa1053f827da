package parser

import "regexp"

// The two notification shapes recognized inside an Info24 email body. Both
// patterns are compiled once and treated as immutable configuration; matching
// is case sensitive and non-overlapping within each shape.
var (
	// Bank-transfer notifications span multiple lines, so dot matches across
	// line breaks. Captures: date, account number, kind, details blob,
	// balance after posting.
	bankTransferPattern = regexp.MustCompile(
		`(?s)dne\s(.+?)\s[\p{L}\p{N}_]+\sna\súčtu\s(\d+)\s[\p{L}\p{N}_]+\s(.+?):\s+` +
			`(.+?)\s+` +
			`Zůstatek\sna\súčtu\spo\szaúčtování\stransakce:\s([^\r\n]+)`,
	)

	// Card authorizations sit on a single line. Captures: date, time, masked
	// card suffix after the asterisk inside single quotes, amount after
	// "na částku", location after "Místo:" up to the closing period.
	cardAuthPattern = regexp.MustCompile(
		`(\S+)\s(\S+)\s.+?\s'\*(\d+)' na částku (.+?). Místo: (.+?)\.\s`,
	)
)
