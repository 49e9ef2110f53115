package disassembler

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/ternary"
)

// ReadImage reads a textual tryte image: trytes separated by any whitespace.
func ReadImage(r io.Reader) (ternary.Word, error) {
	var img ternary.Word
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		t, err := ternary.ParseTryte(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "tryte %d", len(img))
		}
		img = append(img, t)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	return img, nil
}
