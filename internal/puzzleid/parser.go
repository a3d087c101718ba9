package puzzleid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	daySegmentRegex  = regexp.MustCompile(`^(?:day)?(\d+)$`)
	partSegmentRegex = regexp.MustCompile(`^(?:part)?(\d+)$`)
)

func parseSegment(re *regexp.Regexp, segment, kind string) (int, error) {
	matches := re.FindStringSubmatch(segment)
	if matches == nil {
		return 0, fmt.Errorf("invalid %s segment format: %q", kind, segment)
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid %s number %q: %w", kind, matches[1], err)
	}
	return n, nil
}

// Parse creates an Address from its string representation.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("puzzle identifier cannot be empty")
	}

	segments := strings.Split(strings.ToLower(rawID), ".")
	if len(segments) > 2 {
		return nil, fmt.Errorf("puzzle identifier %q has too many segments", rawID)
	}
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("puzzle identifier %q contains empty segment", rawID)
		}
	}

	day, err := parseSegment(daySegmentRegex, segments[0], "day")
	if err != nil {
		return nil, err
	}
	if day < 1 || day > MaxDay {
		return nil, fmt.Errorf("day %d out of range 1-%d", day, MaxDay)
	}

	addr := &Address{Day: day}
	if len(segments) == 2 {
		part, err := parseSegment(partSegmentRegex, segments[1], "part")
		if err != nil {
			return nil, err
		}
		if part < 1 {
			return nil, fmt.Errorf("part must be positive, got %d", part)
		}
		addr.Part = part
	}

	return addr, nil
}
