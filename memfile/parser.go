package memfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a gamma image from the given file path.
//
// Example:
//
//	img, err := memfile.Load("gamma_smooth_toe.mem")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads a gamma image from any io.Reader. Useful for
// testing and for sources other than files.
func LoadReader(r io.Reader) (*Image, error) {
	scanner := bufio.NewScanner(r)

	img := &Image{}
	count := 0
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Blank lines do not count toward the 128.
		if line == "" {
			continue
		}

		if count >= WordCount {
			count++
			continue
		}

		word, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		img.words[count] = word
		count++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if count != WordCount {
		return nil, fmt.Errorf("expected %d non-empty lines, found %d", WordCount, count)
	}

	return img, nil
}

// parseLine extracts the 32-bit word from one non-empty line. Only the
// first whitespace-delimited token is significant; the rest of the line
// is treated as a comment.
func parseLine(line string) (uint32, error) {
	token := strings.Fields(line)[0]

	if len(token) >= 2 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X') {
		token = token[2:]
	}
	if token == "" {
		return 0, fmt.Errorf("not a valid hex word: %q", line)
	}

	val, err := strconv.ParseUint(token, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid hex word: %q", line)
	}
	if val > 0xFFFFFFFF {
		return 0, fmt.Errorf("value out of 32-bit range: %d", val)
	}

	return uint32(val), nil
}
