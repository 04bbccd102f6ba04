package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"itinera/pkg/utils"
)

// rejectionPhrases are the ways models decline a destination without using
// the sentinel. Matched case-insensitively as substrings.
var rejectionPhrases = []string{
	strings.ToLower(InvalidDestinationSentinel),
	"not a valid destination",
	"not a real destination",
	"not a real place",
	"is not a recognized destination",
	"is not a recognized location",
	"does not appear to be a real",
	"doesn't appear to be a real",
	"unable to identify the destination",
	"could not identify the destination",
	"cannot create an itinerary for",
	"can't create an itinerary for",
}

var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")

// DetectInvalidDestination returns an error wrapping utils.ErrInvalidDestination
// when the raw response carries the sentinel or a known rejection phrasing.
func DetectInvalidDestination(raw string) error {
	lower := strings.ToLower(raw)
	for _, phrase := range rejectionPhrases {
		if idx := strings.Index(lower, phrase); idx >= 0 {
			return fmt.Errorf("%w: %s", utils.ErrInvalidDestination, reasonAt(raw, idx))
		}
	}
	return nil
}

func reasonAt(raw string, idx int) string {
	line := raw[idx:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	line = strings.TrimSpace(line)
	if len(line) > 200 {
		line = line[:200]
	}
	return line
}

// ExtractFenced returns the body of the first markdown code fence that
// contains an object.
func ExtractFenced(raw string) (string, bool) {
	for _, m := range fencedBlock.FindAllStringSubmatch(raw, -1) {
		body := strings.TrimSpace(m[1])
		if strings.Contains(body, "{") {
			return body, true
		}
	}
	return "", false
}

// ExtractBraced returns the largest balanced {...} span of raw. Braces
// inside JSON strings are ignored.
func ExtractBraced(raw string) (string, bool) {
	best := ""
	for start := strings.IndexByte(raw, '{'); start >= 0; {
		end := findMatchingBrace(raw, start)
		if end < 0 {
			break
		}
		if end+1-start > len(best) {
			best = raw[start : end+1]
		}
		next := strings.IndexByte(raw[end+1:], '{')
		if next < 0 {
			break
		}
		start = end + 1 + next
	}
	return best, best != ""
}

// findMatchingBrace finds the matching closing brace for an opening brace
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// StripComments removes // and /* */ comments and trailing commas that sit
// outside JSON strings.
func StripComments(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				out.WriteByte('\n')
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += end + 3
			}
		case c == ',':
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ExtractJSON locates the JSON object in a model response and decodes its
// top-level fields. Failures wrap utils.ErrGeneration; a rejected destination
// wraps utils.ErrInvalidDestination.
func ExtractJSON(raw string) (map[string]json.RawMessage, error) {
	if err := DetectInvalidDestination(raw); err != nil {
		return nil, err
	}

	candidate, ok := ExtractFenced(raw)
	if ok {
		// a fence can still carry prose around the object
		if braced, found := ExtractBraced(candidate); found {
			candidate = braced
		}
	} else {
		candidate, ok = ExtractBraced(raw)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found in response", utils.ErrGeneration)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(StripComments(candidate)), &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in response: %v", utils.ErrGeneration, err)
	}
	return doc, nil
}
