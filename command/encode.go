package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

type outputFormat struct {
	ext         string
	contentType string
	encode      func(io.Writer, any) error
}

var outputFormats = map[string]*outputFormat{
	"yaml": {
		ext:         "yaml",
		contentType: "application/yaml",
		encode: func(w io.Writer, v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)

			if err := enc.Encode(v); err != nil {
				return err
			}

			return enc.Close()
		},
	},
	"json": {
		ext:         "json",
		contentType: "application/json",
		encode: func(w io.Writer, v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	},
	"plist": {
		ext:         "plist",
		contentType: "application/xml",
		encode: func(w io.Writer, v any) error {
			enc := plist.NewEncoder(w)
			enc.Indent("\t")

			if err := enc.Encode(v); err != nil {
				return err
			}

			_, err := fmt.Fprintln(w)
			return err
		},
	},
}

func getOutputFormat(name string) (*outputFormat, error) {
	if f, ok := outputFormats[strings.ToLower(name)]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("unsupported output format %q, must be one of yaml, json or plist", name)
}
