package site

import (
	"strings"
	"testing"
)

func TestDefault_EmbeddedConfigIsValid(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("embedded config failed to load: %v", err)
	}

	if cfg.Owner == "" {
		t.Error("expected owner to be set")
	}
	if len(cfg.Nav) == 0 {
		t.Error("expected at least one nav link")
	}
	if len(cfg.Social) == 0 {
		t.Error("expected at least one social link")
	}
	if cfg.DefaultTheme != "light" && cfg.DefaultTheme != "dark" {
		t.Errorf("unexpected default theme %q", cfg.DefaultTheme)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "minimal valid config",
			yaml: "owner: Alex Doe\n",
		},
		{
			name:    "missing owner should fail",
			yaml:    "tagline: hello\n",
			wantErr: "owner is required",
		},
		{
			name:    "invalid theme should fail",
			yaml:    "owner: Alex Doe\ndefault_theme: sepia\n",
			wantErr: "default_theme must be 'light' or 'dark'",
		},
		{
			name:    "invalid social url should fail",
			yaml:    "owner: Alex Doe\nsocial:\n  - name: Bad\n    url: ftp://example.com\n",
			wantErr: "url must be http(s) or mailto",
		},
		{
			name:    "unparseable yaml should fail",
			yaml:    "owner: [unclosed\n",
			wantErr: "failed to parse site config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DefaultTheme != "light" {
				t.Errorf("expected theme to default to light, got %q", cfg.DefaultTheme)
			}
		})
	}
}
