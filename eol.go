package regx

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

const maxLineLength = 1 << 20

// ReadText reads all of r and returns the text with each line terminated
// by '\n' and the line separator of the first terminated line, "\n" or
// "\r\n". If no line is terminated eol is "\n".
func ReadText(r io.Reader) (text, eol string, err error) {
	var (
		sb  strings.Builder
		sep lineSepScanner
	)
	scn := bufio.NewScanner(r)
	scn.Buffer(nil, maxLineLength)
	scn.Split(sep.ScanLines)
	for scn.Scan() {
		sb.Write(scn.Bytes())
		if len(sep) > 0 {
			sb.WriteByte('\n')
			if eol == "" {
				eol = string(sep)
			}
		}
	}
	if err = scn.Err(); err != nil {
		return "", "", err
	}
	if eol == "" {
		eol = "\n"
	}
	return sb.String(), eol, nil
}

// WriteText writes text to w with each '\n' replaced by eol.
func WriteText(w io.Writer, text, eol string) (err error) {
	if eol != "\n" && eol != "" {
		text = strings.ReplaceAll(text, "\n", eol)
	}
	_, err = io.WriteString(w, text)
	return err
}

type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		*lsc = nil
		return len(data), data, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}
