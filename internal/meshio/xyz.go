// Package meshio implements the pipeline's external data formats
// (spec.md §6): a permissive ASCII XYZ point-cloud reader, an ASCII OBJ
// mesh writer, and an ASCII PLY debug-point-cloud writer.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

// ReadXYZ parses whitespace-separated "x y z" triples, one per non-blank
// line, until EOF. Comments are not supported. The separator is any run of
// whitespace (spec.md §6: "parser is permissive").
func ReadXYZ(r io.Reader) (meshmodel.PointCloud, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var cloud meshmodel.PointCloud
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNum, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNum, err)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNum, err)
		}
		cloud = append(cloud, meshmodel.Point{X: x, Y: y, Z: z})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: reading xyz stream: %w", err)
	}
	if len(cloud) == 0 {
		return nil, ErrEmptyInput
	}

	return cloud, nil
}
