package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Server struct {
	ListeningAddress *string
	CORSEnabled      *bool
}

func (s *Server) setDefaults() {
	s.ListeningAddress = gosettings.DefaultPointer(s.ListeningAddress, ":5050")
	s.CORSEnabled = gosettings.DefaultPointer(s.CORSEnabled, true)
}

func (s Server) Validate() (err error) {
	err = validate.ListeningAddress(*s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}
	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	node := gotree.New("Server")
	node.Appendf("Listening address: %s", *s.ListeningAddress)
	node.Appendf("CORS enabled: %s", gosettings.BoolToYesNo(s.CORSEnabled))
	return node
}

func (s *Server) read(reader *reader.Reader) (err error) {
	s.ListeningAddress = reader.Get("LISTENING_ADDRESS")

	s.CORSEnabled, err = reader.BoolPtr("CORS_ENABLED")
	if err != nil {
		return err
	}

	return nil
}
