package xml2pdf

import (
	"errors"
	"testing"
)

func TestParseXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantRoot string
		wantErr  error
	}{
		{name: "self-closing root", data: "<Root/>", wantRoot: "Root"},
		{name: "with declaration", data: `<?xml version="1.0"?><Doc><Title>x</Title></Doc>`, wantRoot: "Doc"},
		{name: "empty input", data: "", wantErr: ErrInvalidXML},
		{name: "whitespace only", data: "  \n ", wantErr: ErrInvalidXML},
		{name: "truncated tag", data: "<Root", wantErr: ErrInvalidXML},
		{name: "text without element", data: "plain text", wantErr: ErrInvalidXML},
		{name: "comment around root", data: "<!-- a --><Root/>\n<!-- b -->", wantRoot: "Root"},
		{name: "multiple roots", data: "<Root></Root><Other/>", wantErr: ErrInvalidXML},
		{name: "trailing text after root", data: "<Root/>tail", wantErr: ErrInvalidXML},
		{name: "leading text before root", data: "head<Root/>", wantErr: ErrInvalidXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseXML([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseXML() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && doc.Root().Tag != tt.wantRoot {
				t.Errorf("root = %q, want %q", doc.Root().Tag, tt.wantRoot)
			}
		})
	}
}
