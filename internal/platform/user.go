package platform

import (
	"os"
	"os/user"
	"strings"
)

// FallbackUserName is used when no login name can be determined
const FallbackUserName = "user"

// loginEnvVars are consulted in order for the login name
var loginEnvVars = []string{"LOGNAME", "USER", "USERNAME"}

// currentOSUser is the alternate identity lookup; replaced in tests
var currentOSUser = user.Current

// CurrentUser returns the OS login name. It tries the login environment first,
// then the account database, then falls back to FallbackUserName. It never fails.
func CurrentUser() string {
	for _, key := range loginEnvVars {
		if name := strings.TrimSpace(os.Getenv(key)); name != "" {
			return name
		}
	}

	if u, err := currentOSUser(); err == nil && u != nil {
		if name := strings.TrimSpace(u.Username); name != "" {
			// Windows reports DOMAIN\name
			if i := strings.LastIndex(name, `\`); i >= 0 {
				name = name[i+1:]
			}
			if name != "" {
				return name
			}
		}
	}

	return FallbackUserName
}
