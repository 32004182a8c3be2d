package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config file location and environment.
const (
	configBaseName   = "camelize"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	envPrefix        = "CAMELIZE"

	configVersionKey     = "version"
	currentConfigVersion = 1
)

// Flag names.
const (
	excludeFlagName     = "exclude"
	runParallelFlagName = "parallel"
	strictFlagName      = "strict"
	reportFlagName      = "report"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
)

// Config keys.
const (
	excludeConfigKey     = "paths.exclude"
	runParallelConfigKey = "run.parallel"
	strictConfigKey      = "rewrite.strict"
	reportConfigKey      = "report.path"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"
)

// Defaults.
const (
	defaultRunParallel = 1
	defaultStrict      = false
	defaultReportPath  = ""

	defaultLogFilename   = ".camelize.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10 // megabytes
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28 // days
	defaultLogCompress   = true
)

// configDefaults seeds every key that a config file, the environment or a
// bound flag may override.
var configDefaults = map[string]any{
	configVersionKey:     currentConfigVersion,
	excludeConfigKey:     []string{},
	runParallelConfigKey: defaultRunParallel,
	strictConfigKey:      defaultStrict,
	reportConfigKey:      defaultReportPath,

	logFilenameKey:   defaultLogFilename,
	logLevelKey:      defaultLogLevel,
	logVerboseKey:    defaultLogVerbose,
	logMaxSizeKey:    defaultLogMaxSize,
	logMaxBackupsKey: defaultLogMaxBackups,
	logMaxAgeKey:     defaultLogMaxAge,
	logCompressKey:   defaultLogCompress,
}

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	for key, value := range configDefaults {
		viper.SetDefault(key, value)
	}

	readConfigFile()
}

// readConfigFile loads camelize.yaml from the working directory. A missing
// file is the normal case and stays silent.
func readConfigFile() {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError

	switch {
	case err == nil:
		slog.Debug("Loaded config file", "file", viper.ConfigFileUsed())
	case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
		return
	default:
		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))

	switch level {
	case "":
		return defaultLevel
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// logLevel resolves the level for this run; --verbose wins over log.level.
func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
}

// newLogWriter returns the rotating log file configured under log.*.
func newLogWriter(logPath string) *lumberjack.Logger {
	for _, candidate := range []string{logPath, viper.GetString(logFilenameKey), defaultLogFilename} {
		if strings.TrimSpace(candidate) != "" {
			logPath = candidate
			break
		}
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}

// configureLogger installs a text slog logger writing to the rotating log
// file and returns the file so the caller can close it.
func configureLogger(logPath string, verbose bool) *lumberjack.Logger {
	writer := newLogWriter(logPath)

	slog.SetDefault(slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel(verbose),
	})))

	return writer
}
