package initial

import (
	"ContactBook/internal/config"
	"ContactBook/pkg/zlog"
)

// InitLogger stderr 为 true 时控制台日志写 stderr
func InitLogger(conf *config.Config, stderr bool) {
	zlog.Init(zlog.Options{
		Level:      conf.LogConfig.Level,
		LogPath:    conf.LogConfig.LogPath,
		MaxSize:    conf.LogConfig.MaxSize,
		MaxBackups: conf.LogConfig.MaxBackups,
		MaxAge:     conf.LogConfig.MaxAge,
		Compress:   conf.LogConfig.Compress,
		Stderr:     stderr,
	})
}
