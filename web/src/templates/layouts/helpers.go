package layouts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CalculateTitle builds the document title from a page name and the app name,
// e.g. ("password", "Goby Forms") -> "Password - Goby Forms".
func CalculateTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		// Casers are stateful, so one is built per call.
		return cases.Title(language.English).String(title) + " - " + appName
	}
	return appName
}
