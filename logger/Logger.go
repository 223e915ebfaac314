package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
}

func readLoggerProperties() (string, int, int, int, bool, string) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath("./")

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	//設定檔不存在就用預設值
	_ = v.ReadInConfig()

	logFilename := cast.ToString(v.Get("logFilename"))
	maxSize := cast.ToInt(v.Get("maxSize"))
	maxBackups := cast.ToInt(v.Get("maxBackups"))
	maxAge := cast.ToInt(v.Get("maxAge"))
	compressFlag := cast.ToBool(v.Get("compress"))
	level := cast.ToString(v.Get("level"))

	return logFilename, maxSize, maxBackups, maxAge, compressFlag, level
}

func (l Logger) Init() {

	logFilename, maxSize, maxBackups, maxAge, compressFlag, level := readLoggerProperties()

	loggerConfig := &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compressFlag,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	//全螢幕遊戲不能寫stdout，只寫到檔案
	logrus.SetOutput(loggerConfig)

	switch level {

	case "Trace":
		logrus.SetLevel(logrus.TraceLevel)

	case "Info":
		logrus.SetLevel(logrus.InfoLevel)

	case "Warn":
		logrus.SetLevel(logrus.WarnLevel)

	case "Error":
		logrus.SetLevel(logrus.ErrorLevel)

	case "Fatal":
		logrus.SetLevel(logrus.FatalLevel)

	default:
		logrus.SetLevel(logrus.DebugLevel)
	}

}

func (l Logger) Info(message string) {
	logrus.Info(message)
}

func (l Logger) Infof(format string, args ...interface{}) {
	logrus.Info(fmt.Sprintf(format, args...))
}

func (l Logger) Error(message string) {
	logrus.Error(message)
}

func (l Logger) Debug(message string) {
	logrus.Debug(message)
}

func (l Logger) Debugf(format string, args ...interface{}) {
	logrus.Debug(fmt.Sprintf(format, args...))
}

func (l Logger) Warn(message string) {
	logrus.Warn(message)
}

func (l Logger) Fatal(message string) {
	logrus.Fatal(message)
}
