package pty

import (
	"math"
	"strconv"
	"strings"
)

const (
	// integer frequencies below this value are MHz values without decimal
	// point (e.g. "99" = 99 MHz). As a consequence, kHz values below 2000
	// can not be represented.
	mhzThreshold = 2000

	maxPTYCode = 31
)

// ParseFrequency parses the given frequency field and returns the frequency
// in kHz. The following forms are accepted:
//
//   - decimal MHz, detected by the presence of a '.' (e.g. 102.7)
//   - integer MHz, for integers between 0 and 2000 exclusive (e.g. 99)
//   - integer kHz (e.g. 102700)
//
// Parsing is best-effort: a leading numeric prefix is used and unparsable
// values result in 0.
func ParseFrequency(s string) uint32 {
	f, _ := parseFrequency(s)
	return f
}

func parseFrequency(s string) (uint32, bool) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ".") {
		mhz, ok := parseLeadingFloat(s)
		if !ok || mhz < 0 {
			return 0, false
		}
		khz := math.Round(mhz * 1000)
		if khz > math.MaxUint32 {
			return 0, false
		}
		return uint32(khz), true
	}

	v, ok := parseLeadingInt(s)
	if !ok || v < 0 || v > math.MaxUint32 {
		return 0, false
	}
	if v > 0 && v < mhzThreshold {
		v = v * 1000
	}
	return uint32(v), true
}

// FormatFrequency returns the frequency as MHz. Whole MHz values are
// rendered without decimal point, other values with exactly one decimal.
// Frequencies of mhzThreshold MHz and above are rendered as integer kHz, as
// an integer MHz value in that range would be read back as kHz.
func FormatFrequency(khz uint32) string {
	if khz >= mhzThreshold*1000 {
		return strconv.FormatUint(uint64(khz), 10)
	}
	if khz%1000 == 0 {
		return strconv.FormatUint(uint64(khz/1000), 10)
	}
	return strconv.FormatFloat(float64(khz)/1000, 'f', 1, 64)
}

// ParseLine parses a single line of the persisted file. When ok is false,
// the line does not hold an entry and must be skipped. The returned status
// is StatusMalformed when the line was skipped because it has no separator,
// or when one of the numeric fields degraded to zero.
func ParseLine(line string, schema Schema) (e Entry, ok bool, st Status) {
	line = strings.TrimSpace(line)
	if line == "" {
		return e, false, StatusOK
	}

	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return e, false, StatusMalformed
	}

	freq, meta := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	st = StatusOK
	var valid bool
	e.FrequencyKHz, valid = parseFrequency(freq)
	if !valid {
		st = StatusMalformed
	}

	switch schema {
	case SchemaCode:
		fields := strings.SplitN(meta, ",", 2)
		code, codeOK := parseLeadingInt(strings.TrimSpace(fields[0]))
		if !codeOK || code < 0 || code > maxPTYCode {
			code = 0
			st = StatusMalformed
		}
		e.Code = uint8(code)
		if len(fields) == 2 {
			e.Name = strings.TrimSpace(fields[1])
		}
	default:
		e.Tag = meta
	}

	return e, true, st
}

// FormatLine returns the persisted representation of the given entry,
// without line terminator. Line breaks in the tag or name are replaced by
// a space.
func FormatLine(e Entry, schema Schema) string {
	var b strings.Builder
	b.WriteString(FormatFrequency(e.FrequencyKHz))
	b.WriteByte(',')

	switch schema {
	case SchemaCode:
		b.WriteString(strconv.Itoa(int(e.Code)))
		if e.Name != "" {
			b.WriteByte(',')
			b.WriteString(singleLine(e.Name))
		}
	default:
		b.WriteString(singleLine(e.Tag))
	}

	return b.String()
}

var lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func singleLine(s string) string {
	return lineBreakReplacer.Replace(s)
}

// parseLeadingInt parses the leading (optionally signed) integer of s,
// ignoring any trailing characters.
func parseLeadingInt(s string) (int64, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseLeadingFloat parses the leading (optionally signed) decimal number
// of s, ignoring any trailing characters.
func parseLeadingFloat(s string) (float64, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
