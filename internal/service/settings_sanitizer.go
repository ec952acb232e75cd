package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// SanitizeSettings builds the canonical settings document from an untrusted
// decoded JSON object. The result fully replaces the stored document.
//
// Fields that are absent or not of the expected JSON type are left out of
// the result, so a client that sends only some fields drops the others.
// Callers must always send the whole document.
func SanitizeSettings(raw map[string]any) model.SiteSettings {
	var out model.SiteSettings
	out.Platform = trimmedString(raw, "platform")
	out.PlatformName = trimmedString(raw, "platformName")
	out.Handle = trimmedString(raw, "handle")
	out.URL = trimmedString(raw, "url")

	if list, ok := raw["platforms"].([]any); ok {
		out.Platforms = normalizePlatforms(list)
	}
	return out
}

func trimmedString(raw map[string]any, key string) *string {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// normalizePlatforms keeps non-empty trimmed strings, drops case-insensitive
// duplicates (first spelling wins) and sorts case-insensitively.
// It never returns nil.
func normalizePlatforms(list []any) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}

	// Collators are not safe for concurrent use.
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
