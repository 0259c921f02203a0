package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// maxLineLength is the maximum number of bytes kept for an input line.
// Longer lines are discarded and flagged as too long.
const maxLineLength = 1024

type inputLine struct {
	text    string
	tooLong bool
}

// startInputReader reads lines from reader in a goroutine so reading
// can be abandoned when the context is canceled. A read error is sent
// on the error channel before the lines channel is closed.
func startInputReader(ctx context.Context, reader io.Reader) (
	lines <-chan inputLine, errCh <-chan error) {
	linesCh := make(chan inputLine)
	errorCh := make(chan error, 1)

	go func() {
		defer close(linesCh)
		bufReader := bufio.NewReader(reader)
		for {
			line, err := readInputLine(bufReader)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					errorCh <- err
				}
				return
			}
			select {
			case linesCh <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return linesCh, errorCh
}

func readInputLine(reader *bufio.Reader) (line inputLine, err error) {
	var b []byte
	started := false
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				line.text = string(b)
				return line, nil
			}
			return inputLine{}, err
		}
		started = true

		if !line.tooLong {
			if len(b)+len(chunk) > maxLineLength {
				line.tooLong = true
				b = nil
			} else {
				b = append(b, chunk...)
			}
		}

		if !isPrefix {
			line.text = string(b)
			return line, nil
		}
	}
}
