package memory

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/andre-morales/protoemu/pkg/word"
)

// LoadImage reads a memory image, one Word per line, in the same
// convention a loader for this family of machines always uses: each
// line holds a single number (0x-prefixed hex or decimal), trailing
// "#"-comments and blank lines are ignored, and line order fixes
// address order starting at 0. The resulting Memory is exactly as long
// as the image.
func LoadImage(r io.Reader) (*Memory, error) {
	var cells []word.Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 0, 16)
		if err != nil {
			return nil, err
		}
		cells = append(cells, word.Word(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(cells)
}
