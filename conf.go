package nutrigo

import (
	"log"
	"os"
	"path"

	"github.com/joho/godotenv"
)

type Config struct {
	StorageBackend string // "sqlite", "file", or "memory"
	DataPath       string
	LogLevel       string
	LogPath        string
	Language       string
	GeminiAPIKey   string
	Reminders      bool
}

const (
	DefaultStorageBackend = "sqlite"
	DefaultLogLevel       = "WARN"
	DefaultLanguage       = "en"
)

var (
	userHome, _     = os.UserHomeDir()
	DefaultDataPath = path.Join(userHome, ".nutrigo", "nutrigo.db")
	DefaultLogPath  = path.Join(userHome, ".nutrigo", "nutrigo.log")
)

func LoadConfig() Config {
	confFromEnv := configFromEnv()

	// load file
	cfgDir, _ := os.UserConfigDir()
	cfgDir = path.Join(cfgDir, "nutrigo")
	confFile := path.Join(cfgDir, "nutrigo.conf")
	if _, err := os.Stat(confFile); err != nil {
		log.Println("creating default conf file")
		if err := os.MkdirAll(cfgDir, 0o744); err != nil {
			panic(err)
		}
		f, err := os.Create(confFile)
		if err != nil {
			panic(err)
		}
		defaults := []string{
			"NUTRIGO_STORAGE=" + DefaultStorageBackend + "\n",
			"NUTRIGO_DATA_PATH=" + DefaultDataPath + "\n",
			"NUTRIGO_LOG_LEVEL=" + DefaultLogLevel + "\n",
			"NUTRIGO_LOG_PATH=" + DefaultLogPath + "\n",
			"NUTRIGO_LANG=" + DefaultLanguage + "\n",
			"NUTRIGO_REMINDERS=on\n",
		}
		for _, line := range defaults {
			if _, err := f.WriteString(line); err != nil {
				panic(err)
			}
		}
		_ = f.Close()
	}
	if err := godotenv.Load(confFile); err != nil {
		panic(err)
	}
	confFromFile := configFromEnv()

	return Config{
		StorageBackend: coalesce(confFromEnv.StorageBackend, confFromFile.StorageBackend, DefaultStorageBackend),
		DataPath:       coalesce(confFromEnv.DataPath, confFromFile.DataPath, DefaultDataPath),
		LogLevel:       coalesce(confFromEnv.LogLevel, confFromFile.LogLevel, DefaultLogLevel),
		LogPath:        coalesce(confFromEnv.LogPath, confFromFile.LogPath, DefaultLogPath),
		Language:       coalesce(confFromEnv.Language, confFromFile.Language, DefaultLanguage),
		GeminiAPIKey:   coalesce(confFromEnv.GeminiAPIKey, confFromFile.GeminiAPIKey),
		Reminders:      os.Getenv("NUTRIGO_REMINDERS") != "off",
	}
}

func configFromEnv() Config {
	return Config{
		StorageBackend: os.Getenv("NUTRIGO_STORAGE"),
		DataPath:       os.Getenv("NUTRIGO_DATA_PATH"),
		LogLevel:       os.Getenv("NUTRIGO_LOG_LEVEL"),
		LogPath:        os.Getenv("NUTRIGO_LOG_PATH"),
		Language:       os.Getenv("NUTRIGO_LANG"),
		GeminiAPIKey:   coalesce(os.Getenv("NUTRIGO_GEMINI_API_KEY"), os.Getenv("GEMINI_API_KEY")),
	}
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
