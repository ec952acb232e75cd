package model

import "encoding/json"

// SiteSettings is the single site-wide settings document (social platform
// shown in the site footer and the list of platforms offered in the admin).
//
// A nil field means "not present": it is omitted from JSON. Platforms is
// emitted as [] when present but empty.
type SiteSettings struct {
	Platform     *string  `json:"platform,omitempty"`
	PlatformName *string  `json:"platformName,omitempty"`
	Handle       *string  `json:"handle,omitempty"`
	URL          *string  `json:"url,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
}

type siteSettingsJSON struct {
	Platform     *string   `json:"platform,omitempty"`
	PlatformName *string   `json:"platformName,omitempty"`
	Handle       *string   `json:"handle,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Platforms    *[]string `json:"platforms,omitempty"`
}

// MarshalJSON keeps an empty but present platforms list as [].
func (s SiteSettings) MarshalJSON() ([]byte, error) {
	out := siteSettingsJSON{
		Platform:     s.Platform,
		PlatformName: s.PlatformName,
		Handle:       s.Handle,
		URL:          s.URL,
	}
	if s.Platforms != nil {
		p := s.Platforms
		out.Platforms = &p
	}
	return json.Marshal(out)
}
