package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watcher reloads the config file on change and hands valid results to apply
// apply runs on the fsnotify goroutine; callers hand the config to their frame loop
type Watcher struct {
	v     *viper.Viper
	log   *slog.Logger
	apply func(cfg *Config, source string)
}

func NewWatcher(v *viper.Viper, log *slog.Logger, apply func(cfg *Config, source string)) *Watcher {
	return &Watcher{
		v:     v,
		log:   log.With("component", "config"),
		apply: apply,
	}
}

// Start begins watching the file viper read
func (w *Watcher) Start() {
	w.v.OnConfigChange(w.handle)
	w.v.WatchConfig()
}

func (w *Watcher) handle(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	cfg, err := Load(w.v)
	if err != nil {
		w.log.Warn("config reload rejected", "file", e.Name, "error", err)
		return
	}
	w.log.Debug("config reloaded", "file", e.Name)
	w.apply(cfg, e.Name)
}
