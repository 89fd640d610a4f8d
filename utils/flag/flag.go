/*
flag package sets up cli flags shared across services.

Flags listed here are shared across boundaries and service-agnostic; service
dependent flags belong in their respective package.
*/
package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	ByPassAuth    bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the running service, used in log fields")
	flag.BoolVar(&ByPassAuth, "bypass_auth", false, "skip token verification, for local development only")
}

// Parse reads the command line. Called from main, not init, so test
// binaries can register their own flags first.
func Parse() {
	flag.Parse()
}
