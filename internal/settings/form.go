package settings

import (
	"net/url"
	"strings"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/sanitize"
)

const (
	formField     = "sa_settings"
	toolbarPrefix = "admin_bar_"
)

// ParseSubmission collects the checkbox fields of a settings form. Each
// "sa_settings[<key>]" field that is present marks <key> hidden. On the
// toolbar tab the "admin_bar_" marker the form adds to its keys is removed.
func ParseSubmission(tab Tab, form url.Values) Exclusions {
	ex := Exclusions{}
	for name := range form {
		key, ok := bracketKey(name)
		if !ok {
			continue
		}
		key = sanitize.Field(key)
		if tab == TabToolbar {
			key = strings.ReplaceAll(key, toolbarPrefix, "")
		}
		if key == "" {
			continue
		}
		ex[key] = true
	}
	return ex
}

// bracketKey extracts <key> from "sa_settings[<key>]".
func bracketKey(name string) (string, bool) {
	if !strings.HasPrefix(name, formField+"[") || !strings.HasSuffix(name, "]") {
		return "", false
	}
	return name[len(formField)+1 : len(name)-1], true
}
