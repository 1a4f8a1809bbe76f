package pty

import (
	"strings"
)

// ptyNames holds the European RDS program type names, indexed by code.
var ptyNames = [maxPTYCode + 1]string{
	"None",
	"News",
	"Current Affairs",
	"Information",
	"Sport",
	"Education",
	"Drama",
	"Culture",
	"Science",
	"Varied",
	"Pop Music",
	"Rock Music",
	"Easy Listening",
	"Light Classical",
	"Serious Classical",
	"Other Music",
	"Weather",
	"Finance",
	"Children's Programmes",
	"Social Affairs",
	"Religion",
	"Phone In",
	"Travel",
	"Leisure",
	"Jazz Music",
	"Country Music",
	"National Music",
	"Oldies Music",
	"Folk Music",
	"Documentary",
	"Alarm Test",
	"Alarm",
}

// PTYName returns the program type name for the given code, or an empty
// string when the code is out of range.
func PTYName(code uint8) string {
	if int(code) >= len(ptyNames) {
		return ""
	}
	return ptyNames[code]
}

// ParsePTY returns the program type code for the given code or
// (case-insensitive) program type name.
func ParsePTY(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	if v, ok := parseLeadingInt(s); ok && len(s) > 0 && strings.Trim(s, "+-0123456789") == "" {
		if v < 0 || v > maxPTYCode {
			return 0, false
		}
		return uint8(v), true
	}

	for i, name := range ptyNames {
		if strings.EqualFold(name, s) {
			return uint8(i), true
		}
	}
	return 0, false
}
