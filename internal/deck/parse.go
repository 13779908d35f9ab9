package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads a plain text decklist, one card per line:
//
//	4 Lightning Bolt
//	12x Mountain
//	Sol Ring
//
// A missing count means one copy. Blank lines and lines starting with # are
// skipped; repeated names are summed.
func Parse(r io.Reader) (Deck, error) {
	var d Deck
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n, name := splitCount(line)
		if name == "" {
			continue
		}
		d.Add(name, n)
	}
	if err := sc.Err(); err != nil {
		return Deck{}, fmt.Errorf("reading decklist: %w", err)
	}
	return d, nil
}

// LoadFile parses the decklist at path and names the deck after the file.
func LoadFile(path string) (Deck, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Deck{}, err
	}
	defer fp.Close()

	d, err := Parse(fp)
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return d, nil
}

func splitCount(line string) (int, string) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1, line
	}
	n, err := strconv.Atoi(line[:i])
	if err != nil || n <= 0 {
		return 1, line
	}
	rest := line[i:]
	if strings.HasPrefix(rest, "x") || strings.HasPrefix(rest, "X") {
		rest = rest[1:]
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// a name that starts with digits
		return 1, line
	}
	return n, strings.TrimSpace(rest)
}
