package models

import (
	"errors"
	"strings"
)

// SocialLink is one row of the social-links table on the home page.
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon,omitempty" yaml:"icon"`
}

// Validate checks that the link has valid field values.
func (l *SocialLink) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}

	if !strings.HasPrefix(l.URL, "https://") && !strings.HasPrefix(l.URL, "http://") &&
		!strings.HasPrefix(l.URL, "mailto:") {
		return errors.New("url must be http(s) or mailto")
	}

	return nil
}
