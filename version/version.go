package version

import "fmt"

var GitCommit string
var GitTag string
var UserAgent string

func init() {
	if GitTag == "" {
		GitTag = "dev"
	}
	UserAgent = fmt.Sprintf("nimiq-cli/%s+%s", GitTag, GitCommit)
}
