package geo

import (
	"io"
	"strings"
)

const maxBodySize = 1 << 20

func readBody(body io.Reader) (b []byte, err error) {
	return io.ReadAll(io.LimitReader(body, maxBodySize))
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
