// Package misc holds program identity, set at build time with
//
//	-ldflags "-X docstyle/misc.version=... -X docstyle/misc.gitHash=..."
package misc

const appName = "docstyle"

var (
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
