package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"
	"gopkg.in/yaml.v3"
)

// Encoder writes the assembled document in one concrete output format. The
// strategy is selected once at startup from the format flag; the rest of the
// program never inspects the format again.
type Encoder interface {
	Encode(w io.Writer, doc *Document) error
	Ext() string
}

type yamlEncoder struct{}

func (yamlEncoder) Ext() string { return "yaml" }

func (yamlEncoder) Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

type jsonEncoder struct{}

func (jsonEncoder) Ext() string { return "json" }

func (jsonEncoder) Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// EncoderFor maps a format name to its strategy. yaml is the default for any
// unrecognized name.
func EncoderFor(format string) Encoder {
	if format == "json" {
		return jsonEncoder{}
	}
	return yamlEncoder{}
}

// WriteDocument serializes the document to path with the selected encoder.
func WriteDocument(path string, enc Encoder, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return orpheus.ExecutionError("write", err.Error())
	}
	if err := enc.Encode(f, doc); err != nil {
		_ = f.Close()
		return orpheus.ExecutionError("encode", err.Error())
	}
	if err := f.Close(); err != nil {
		return orpheus.ExecutionError("write", err.Error())
	}
	return nil
}

// EchoDocument pretty-prints the document as indented JSON, used for the
// human-readable copy on stdout.
func EchoDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
