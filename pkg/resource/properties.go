package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"go-weather/configs"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads application properties from YAML
func init() {
	var err error
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		err = Init(value)
	} else {
		err = Load(configs.DefaultProperties)
	}
	if err != nil {
		panic(err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}
	return Load(content)
}

// Load replaces the loaded properties with the given YAML content,
// resolving ${ENV:default} placeholders against the current environment.
func Load(content []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fail to parse properties: %w", err)
	}

	resolved := viper.New()
	parsePropertiesMap("", raw.AllSettings(), resolved)
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
			if resolvedValue, ok := resolveEnvVariable(v); ok {
				result.Set(fullKey, resolvedValue)
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment
// variable or its default. Plain values are returned unchanged.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value, true
	}

	envName := matches[1]
	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue, true
	}
	if matches[2] != "" {
		return matches[2], true
	}
	return "", false
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
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

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
