package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// defaultExemplar is the 5×5 diagonal-stripe sample used when no input is given.
var defaultExemplar = []string{
	"11001",
	"10011",
	"00110",
	"01100",
	"11001",
}

var errEmptyExemplar = errors.New("exemplar has no rows")

// readExemplar parses one raster row per line. Blank lines are skipped.
// In token mode symbols are whitespace-separated words; otherwise every rune
// is one symbol. Row lengths are validated later by the generator.
func readExemplar(r io.Reader, tokens bool) ([][]string, error) {
	var rows [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitRow(line, tokens))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read exemplar: %w", err)
	}
	if len(rows) == 0 {
		return nil, errEmptyExemplar
	}

	return rows, nil
}

func splitRow(line string, tokens bool) []string {
	if tokens {
		return strings.Fields(line)
	}
	row := make([]string, 0, len(line))
	for _, r := range line {
		row = append(row, string(r))
	}

	return row
}

// writeRaster prints one row per line; tokens are space-separated in token mode.
func writeRaster(w io.Writer, raster [][]string, tokens bool) error {
	sep := ""
	if tokens {
		sep = " "
	}
	bw := bufio.NewWriter(w)
	for _, row := range raster {
		if _, err := fmt.Fprintln(bw, strings.Join(row, sep)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
