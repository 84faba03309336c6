package env

import (
	"bufio"
	"os"
	"strings"
)

// Environment variables read by the program. Values from a .env file are applied
// only when the variable is not already set in the process environment.
const (
	ConfigVar  = "PT_CONFIG"
	DatasetVar = "PT_DATASET"
	ModeVar    = "PT_MODE"
	LogFileVar = "PT_LOG_FILE"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// KEY=VALUE line that is not already set. Empty lines and lines starting with # are
// skipped; an optional "export " prefix is accepted. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Overrides are the PT_* values found in the environment; empty fields are unset.
type Overrides struct {
	ConfigPath  string
	DatasetPath string
	Mode        string
	LogFile     string
}

// Read collects the PT_* overrides from the process environment.
func Read() Overrides {
	return Overrides{
		ConfigPath:  os.Getenv(ConfigVar),
		DatasetPath: os.Getenv(DatasetVar),
		Mode:        os.Getenv(ModeVar),
		LogFile:     os.Getenv(LogFileVar),
	}
}
