// Package menu implements the interactive numbered menu
// calling the address API.
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qdm12/ipconvert/internal/client"
)

var (
	ErrAPIUnreachable = errors.New("API is unreachable")
	ErrReadingInput   = errors.New("reading input")
)

type Settings struct {
	API    API
	Input  io.Reader
	Output io.Writer
	// Color enables colored output.
	Color bool
}

type Menu struct {
	api    API
	input  io.Reader
	output io.Writer

	title   *color.Color
	success *color.Color
	failure *color.Color
	prompt  *color.Color
}

func New(settings Settings) *Menu {
	menu := &Menu{
		api:     settings.API,
		input:   settings.Input,
		output:  settings.Output,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		prompt:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{menu.title, menu.success, menu.failure, menu.prompt} {
		if settings.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return menu
}

type choice string

const (
	choiceValidate  choice = "1"
	choiceConvert   choice = "2"
	choiceGeolocate choice = "3"
	choiceExit      choice = "4"
)

// Run checks the API is reachable and then loops over the menu until
// the user exits, the input is exhausted or the context is canceled.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.output, "Connecting to API...")
	_, err := m.api.Ping(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAPIUnreachable, err)
	}
	m.success.Fprintln(m.output, "Connected successfully!")

	lines, errCh := startInputReader(ctx, m.input)

	for {
		m.printMenu()

		line, ok, err := m.readLine(ctx, lines, errCh, "Choose an option (1-4): ")
		if err != nil {
			return err
		} else if !ok {
			fmt.Fprintln(m.output)
			return nil
		}

		switch choice(line.text) {
		case choiceValidate, choiceConvert, choiceGeolocate:
			ip, ok, err := m.readLine(ctx, lines, errCh, "Enter an IP address: ")
			if err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(m.output)
				return nil
			}
			if ip.tooLong {
				m.failure.Fprintf(m.output, "Error: input is longer than %d characters\n", maxLineLength)
				continue
			}
			m.execute(ctx, choice(line.text), ip.text)
		case choiceExit:
			fmt.Fprintln(m.output, "Exiting. Goodbye!")
			return nil
		default:
			m.failure.Fprintln(m.output, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	const separator = "=============================="
	fmt.Fprintln(m.output)
	m.title.Fprintln(m.output, separator)
	m.title.Fprintln(m.output, "   IP Converter & Validator   ")
	m.title.Fprintln(m.output, separator)
	fmt.Fprintln(m.output, "1. Validate IP")
	fmt.Fprintln(m.output, "2. Convert IP (IPv4 ↔ IPv6)")
	fmt.Fprintln(m.output, "3. Geolocate IP")
	fmt.Fprintln(m.output, "4. Exit")
	m.title.Fprintln(m.output, separator)
}

// readLine prints the prompt and waits for the next input line, trimmed.
// ok is false if the input is exhausted or the context is canceled.
func (m *Menu) readLine(ctx context.Context, lines <-chan inputLine,
	errCh <-chan error, prompt string) (line inputLine, ok bool, err error) {
	m.prompt.Fprint(m.output, prompt)
	select {
	case <-ctx.Done():
		return line, false, nil
	case err := <-errCh:
		return line, false, fmt.Errorf("%w: %w", ErrReadingInput, err)
	case line, ok = <-lines:
		if !ok {
			// the error is sent before the lines channel is closed
			select {
			case err := <-errCh:
				return line, false, fmt.Errorf("%w: %w", ErrReadingInput, err)
			default:
				return line, false, nil
			}
		}
		line.text = strings.TrimSpace(line.text)
		return line, true, nil
	}
}

func (m *Menu) execute(ctx context.Context, c choice, ip string) {
	switch c {
	case choiceValidate:
		result, err := m.api.Validate(ctx, ip)
		if err != nil {
			m.printError(err)
			return
		}
		fmt.Fprintln(m.output)
		m.success.Fprintln(m.output, "IP Validation Result:")
		fmt.Fprintf(m.output, "Input: %s\n", result.Input)
		fmt.Fprintf(m.output, "Valid: %t\n", result.Valid)
		fmt.Fprintf(m.output, "Version: %s\n", result.Version)
	case choiceConvert:
		result, err := m.api.Convert(ctx, ip)
		if err != nil {
			m.printError(err)
			return
		}
		m.printJSON("Conversion Result:", result)
	case choiceGeolocate:
		result, err := m.api.Geolocate(ctx, ip)
		if err != nil {
			m.printError(err)
			return
		}
		m.printJSON("Geolocation Info:", result)
	}
}

func (m *Menu) printJSON(title string, data any) {
	b, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.output)
	m.success.Fprintln(m.output, title)
	fmt.Fprintln(m.output, string(b))
}

func (m *Menu) printError(err error) {
	message := err.Error()
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}
	m.failure.Fprintln(m.output, "Error: "+message)
}
