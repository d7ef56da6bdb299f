package extractor

import "testing"

func TestDetectCapabilities(t *testing.T) {
	exec := &fakeExecutor{binaries: map[string]string{"pandoc": "/opt/bin/pandoc"}}
	caps := DetectCapabilities(exec)

	tests := []struct {
		format  Format
		backend string
		want    bool
	}{
		{FormatPDF, "native", true},
		{FormatPDF, "pdfcpu", true},
		{FormatPDF, "pdftotext", false},
		{FormatDOCX, "native", true},
		{FormatDOCX, "pandoc", true},
		{FormatDOCX, BackendDisabled, false},
		{FormatTXT, "native", true},
	}
	for _, tt := range tests {
		if got := caps.Available(tt.format, tt.backend); got != tt.want {
			t.Errorf("Available(%s, %s) = %v, want %v", tt.format, tt.backend, got, tt.want)
		}
	}

	for _, st := range caps.Statuses() {
		if st.Name == "pandoc" && st.Location != "/opt/bin/pandoc" {
			t.Errorf("pandoc location = %q", st.Location)
		}
	}
}
