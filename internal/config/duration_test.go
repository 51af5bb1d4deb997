package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: "15s", want: 15 * time.Second},
		{name: "compound string", input: "1m30s", want: 90 * time.Second},
		{name: "bare seconds", input: "15", want: 15 * time.Second},
		{name: "fractional seconds", input: "0.5", want: 500 * time.Millisecond},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := yaml.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%q) expected error, got %v", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%q) failed: %v", tt.input, err)
			}
			if d.Std() != tt.want {
				t.Errorf("Unmarshal(%q) = %v, want %v", tt.input, d.Std(), tt.want)
			}
		})
	}
}

func TestDurationMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Duration(15 * time.Second))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "15s\n" {
		t.Errorf("Marshal = %q, want %q", out, "15s\n")
	}
}
