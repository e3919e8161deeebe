package state

import "strings"

// FooterText returns the footer content for the current session.
func FooterText(loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if !loading && status != "" {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}
