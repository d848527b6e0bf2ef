package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"go.uber.org/zap/zapcore"
	"os"
	"time"
)

type JsonDuration struct {
	time.Duration
}

func (j *JsonDuration) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	var duration time.Duration
	duration, err = time.ParseDuration(s)
	if err != nil {
		return err
	}
	j.Duration = duration
	return err
}

func (j *JsonDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Duration.String())
}

type Configuration struct {
	Logging struct {
		MaxSize         int
		MaxBackups      int
		MaxAge          int
		Level           zapcore.Level
		ConsoleLogLevel zapcore.Level
		File            string
		HttpAccessFile  string
		DbLogFile       string
	}
	ListeningPort    string
	ListeningAddress string
	Database         struct {
		Host            string
		Port            uint
		Username        string
		Password        string
		DatabaseName    string
		MaxIdleConns    int
		MaxOpenConns    int
		ConnMaxLifetime *JsonDuration
	}
	Site struct {
		// BaseURL is the public origin used when emitting absolute
		// URLs (sitemap entries).
		BaseURL string
	}
	Auth struct {
		// SigningKey enables JWT enforcement on the page admin
		// endpoints. Leave empty to keep them open.
		SigningKey string
	}
}

var config *Configuration

func InitConfig() *Configuration {
	configFile := flag.String("config", "config.json", "Path to config file (json)")
	flag.Parse()
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "\nUsage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		_, _ = fmt.Fprint(os.Stderr, "\n")
	}

	file, _ := os.Open(*configFile)
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		flag.Usage()
		panic("Error parsing config file: " + err.Error())
	}

	//defaults
	if config.Logging.MaxSize <= 0 {
		config.Logging.MaxSize = 500
	}
	if config.Logging.MaxBackups <= 0 {
		config.Logging.MaxBackups = 3
	}
	if config.Logging.MaxAge <= 0 {
		config.Logging.MaxAge = 28
	}
	return config
}

func Config() *Configuration {
	return config
}

func Port() string {
	return config.ListeningPort
}

func Address() string {
	return config.ListeningAddress
}

func BaseURL() string {
	return config.Site.BaseURL
}

func SigningKey() string {
	if config == nil {
		return ""
	}
	return config.Auth.SigningKey
}
