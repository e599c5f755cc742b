package platform

import (
	"errors"
	"os/user"
	"testing"
)

func clearLoginEnv(t *testing.T) {
	t.Helper()
	for _, key := range loginEnvVars {
		t.Setenv(key, "")
	}
}

func TestCurrentUser_FromEnvironment(t *testing.T) {
	clearLoginEnv(t)
	t.Setenv("USER", "alice")

	if got := CurrentUser(); got != "alice" {
		t.Errorf("CurrentUser() = %s, expected alice", got)
	}

	t.Setenv("LOGNAME", "bob")
	if got := CurrentUser(); got != "bob" {
		t.Errorf("CurrentUser() = %s, expected LOGNAME to win", got)
	}
}

func TestCurrentUser_FromAccountDatabase(t *testing.T) {
	clearLoginEnv(t)

	original := currentOSUser
	defer func() { currentOSUser = original }()

	currentOSUser = func() (*user.User, error) {
		return &user.User{Username: `CORP\carol`}, nil
	}

	if got := CurrentUser(); got != "carol" {
		t.Errorf("CurrentUser() = %s, expected carol", got)
	}
}

func TestCurrentUser_Fallback(t *testing.T) {
	clearLoginEnv(t)

	original := currentOSUser
	defer func() { currentOSUser = original }()

	currentOSUser = func() (*user.User, error) {
		return nil, errors.New("no passwd entry")
	}

	if got := CurrentUser(); got != FallbackUserName {
		t.Errorf("CurrentUser() = %s, expected %s", got, FallbackUserName)
	}
}
