package model

// Indicator texts shown on the status buttons.
const (
	LabelLinked       = "LINKED"
	LabelUnlinked     = "UNLINKED\nCLICK TO FIX"
	LabelConnected    = "CONNECTED"
	LabelDisconnected = "DISCONNECTED\nCLICK TO FIX"
	LabelUpToDate     = "UP TO DATE"
)

// BackendLink is the result of the backend integrity check
type BackendLink int

const (
	// BackendUnknown means the check has not run yet
	BackendUnknown BackendLink = iota

	// BackendLinked means the backend file parsed successfully
	BackendLinked

	// BackendUnlinked means the backend file could not be read or parsed
	BackendUnlinked
)

// Label returns the indicator text, or "" while the state is unknown
func (b BackendLink) Label() string {
	switch b {
	case BackendLinked:
		return LabelLinked
	case BackendUnlinked:
		return LabelUnlinked
	default:
		return ""
	}
}

// String returns a short name for logs
func (b BackendLink) String() string {
	switch b {
	case BackendLinked:
		return "linked"
	case BackendUnlinked:
		return "unlinked"
	default:
		return "unknown"
	}
}

// InternetLink is the result of the internet reachability check
type InternetLink int

const (
	InternetUnknown InternetLink = iota
	InternetConnected
	InternetDisconnected
)

// Label returns the indicator text, or "" while the state is unknown
func (i InternetLink) Label() string {
	switch i {
	case InternetConnected:
		return LabelConnected
	case InternetDisconnected:
		return LabelDisconnected
	default:
		return ""
	}
}

// String returns a short name for logs
func (i InternetLink) String() string {
	switch i {
	case InternetConnected:
		return "connected"
	case InternetDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// VersionState is the result of the version check. There is no outdated state:
// the check never compares against a remote release.
type VersionState int

const (
	VersionUnknown VersionState = iota
	VersionUpToDate
)

// Label returns the indicator text, or "" while the state is unknown
func (v VersionState) Label() string {
	if v == VersionUpToDate {
		return LabelUpToDate
	}
	return ""
}

// String returns a short name for logs
func (v VersionState) String() string {
	if v == VersionUpToDate {
		return "up-to-date"
	}
	return "unknown"
}

// IsFailure reports whether the indicator should offer a fix
func (b BackendLink) IsFailure() bool { return b == BackendUnlinked }

// IsFailure reports whether the indicator should offer a fix
func (i InternetLink) IsFailure() bool { return i == InternetDisconnected }
