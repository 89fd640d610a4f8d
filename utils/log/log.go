package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tunemesh/tunemesh/utils/dotenv"
	"github.com/tunemesh/tunemesh/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// the main function. Unit tests will fail with nil pointer dereference if we
// don't init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	// JSON in production for log aggregation, plain text elsewhere for
	// readability.
	if os.Getenv(dotenv.EnvVarName) == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv(dotenv.EnvVarName) != dotenv.ProdEnv},
	)
}
