package pose

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Warning describes a waypoint line that was skipped during parsing.
// Warnings are reported, not raised: a bad line never aborts the read.
type Warning struct {
	// Line is the 1-based line number in the input.
	Line int
	// Text is the offending line, trimmed.
	Text string
	// Reason states why the line was dropped.
	Reason string
}

// String formats the warning the way a CLI would log it.
func (w Warning) String() string {
	return fmt.Sprintf("skipping line %d (%s): %q", w.Line, w.Reason, w.Text)
}

// ReadWaypoints reads a waypoint file: one `x,y,theta_degrees` triple per
// line, blank lines and lines starting with '#' skipped as comments.
// Lines that do not parse as exactly three numeric fields are dropped and
// reported in the returned warnings.
//
// Only a file that cannot be opened yields a non-nil error, together with
// an empty waypoint set.
func ReadWaypoints(path string) ([]Pose, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("pose: open waypoints: %w", err)
	}
	defer f.Close()

	poses, warns := ParseWaypoints(f)
	return poses, warns, nil
}

// ParseWaypoints parses the waypoint line format from r.
// See ReadWaypoints for the format and the warning semantics.
func ParseWaypoints(r io.Reader) ([]Pose, []Warning) {
	var (
		poses []Pose
		warns []Warning
		line  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Split(text, ",")
		if len(parts) != 3 {
			warns = append(warns, Warning{Line: line, Text: text, Reason: "want 3 comma-separated fields"})
			continue
		}

		var vals [3]float64
		ok := true
		for i, part := range parts {
			v, perr := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if perr != nil {
				warns = append(warns, Warning{Line: line, Text: text, Reason: "non-numeric field"})
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		poses = append(poses, New(vals[0], vals[1], vals[2]))
	}

	return poses, warns
}

// exampleWaypoints is the starter file written by WriteExample.
const exampleWaypoints = `# Example Waypoints (x,y,theta_degrees)
-5,5,90
5,5,0
5,-5,-90
-5,-5,180
`

// WriteExample creates a starter waypoint file at path unless one already
// exists. It reports whether the file was created.
func WriteExample(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("pose: write example: %w", err)
	}
	defer f.Close()

	if _, err = f.WriteString(exampleWaypoints); err != nil {
		return false, fmt.Errorf("pose: write example: %w", err)
	}
	return true, nil
}
