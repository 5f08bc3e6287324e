package resource

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	"classy-weather/configs"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from YAML
func init() {
	if err := Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init loads the properties file at filepath. When the file does not exist the embedded defaults are used.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	content, err := os.ReadFile(filepath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		content = configs.ApplicationYAML
	case err != nil:
		return err
	}

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := viper.New()
	parsePropertiesMap("", v.AllSettings(), resolved)
	properties = resolved
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result.Set(fullKey, resolveEnvVariable(v))
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result.Set(fullKey, v)
		case []any:
			result.Set(fullKey, v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment variable or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a property at runtime, mainly from command line flags.
func Set(key string, value any) {
	properties.Set(key, value)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}
