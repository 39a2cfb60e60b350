package models

// AppBuildInfo is the build metadata served by the version endpoint. Values
// are injected by linker flags; unset ones stay "N/A".
type AppBuildInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
	Environment string `json:"environment,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version:     orNA(buildVersion),
		BuildDate:   orNA(buildDate),
		BuildCommit: orNA(buildCommit),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
