package assembler

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Section markers switch between code and data parsing. They may recur.
const (
	SectionCode = ".code"
	SectionData = ".data"
)

// sourceLine is one non-empty statement with its segment and 1-based line number.
type sourceLine struct {
	Number  int
	Segment Segment
	Text    string
}

// splitSource strips comments and blank lines and tags every remaining line
// with the segment it belongs to. Statements before the first section marker
// are skipped.
func splitSource(src, commentMarker string, log logrus.FieldLogger) []sourceLine {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var out []sourceLine
	inSection := false
	var seg Segment
	for i, line := range lines {
		if commentMarker != "" {
			if idx := strings.Index(line, commentMarker); idx != -1 {
				line = line[:idx]
			}
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case SectionCode:
			seg, inSection = SegmentCode, true
			continue
		case SectionData:
			seg, inSection = SegmentData, true
			continue
		}

		if !inSection {
			log.WithField("line", i+1).Warnf("statement outside any section skipped: %q", line)
			continue
		}
		out = append(out, sourceLine{Number: i + 1, Segment: seg, Text: line})
	}
	return out
}
