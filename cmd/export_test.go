package cmd

import (
	"testing"

	"github.com/awrigley/markwright/internal/export"
)

func TestResolveExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		to      string
		output  string
		want    export.Format
		wantErr bool
	}{
		{name: "to flag", to: "rtf", want: export.RTF},
		{name: "to flag aliases", to: "markdown", want: export.Markdown},
		{name: "inferred from output", output: "draft.odt", want: export.ODT},
		{name: "inferred html", output: "page.html", want: export.HTML},
		{name: "flag beats extension", to: "txt", output: "draft.odt", want: export.Text},
		{name: "neither given", wantErr: true},
		{name: "unknown format", to: "docx", wantErr: true},
		{name: "extension-less output", output: "draft", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveExportFormat(tt.to, tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveExportFormat(%q, %q) expected error, got %q", tt.to, tt.output, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveExportFormat(%q, %q) unexpected error: %v", tt.to, tt.output, err)
			}
			if got != tt.want {
				t.Fatalf("resolveExportFormat(%q, %q)=%q, want %q", tt.to, tt.output, got, tt.want)
			}
		})
	}
}
