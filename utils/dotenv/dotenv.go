package dotenv

import (
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

const (
	// EnvVarName selects which .env layer set to load.
	EnvVarName = "TUNEMESH_ENV"

	DevEnv  = "dev"
	ProdEnv = "prod"
)

// LoadDotEnvs loads the .env files following the convention:
// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
// It only needs to be called once in the main function; other code reads
// configuration through os.Getenv during runtime.
func LoadDotEnvs() error {
	loadDotEnvs("")
	return nil
}

func loadDotEnvs(rootPath string) {
	env := os.Getenv(EnvVarName)
	if env == "" {
		env = DevEnv
	}

	// .env.[runtime_env].local has highest priority, usually contains
	// credentials and other sensitive information.
	godotenv.Load(rootPath + ".env." + env + ".local")
	godotenv.Load(rootPath + ".env.local")
	// .env.[runtime_env] usually contains connection information.
	godotenv.Load(rootPath + ".env." + env)
	// .env contains shared variables, overridable by the layers above.
	godotenv.Load(rootPath + ".env")
}

// LoadDotEnvsInTests loads .env.test from the repository root regardless of
// which package directory the test binary runs in. Needed because godotenv
// resolves paths relative to the working directory:
// https://github.com/joho/godotenv/issues/43
func LoadDotEnvsInTests() error {
	re := regexp.MustCompile(`^(.*tunemesh)`)
	cwd, _ := os.Getwd()
	rootPath := re.Find([]byte(cwd))

	godotenv.Load(string(rootPath) + "/" + ".env.test")
	return nil
}
