package config

import (
	"context"
	"path/filepath"
	"time"

	"goat-tracker/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay agrupa la ráfaga de eventos de un mismo guardado.
var reloadDelay = 50 * time.Millisecond

// Watch observa el directorio de path (no el archivo) para ver también los
// guardados atómicos que reemplazan el archivo con rename. Cada cambio
// recarga la config y llama onChange; si la recarga falla se loguea y se
// mantiene la anterior. Corre hasta que ctx se cancela.
func Watch(ctx context.Context, path string, log logger.Logger, onChange func(*Config)) error {
	if log == nil {
		log = logger.Nop()
	}
	target := filepath.Clean(path)
	log = log.With(map[string]any{"component": "config", "path": target})

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	log.Info("watching for changes", nil)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			cfg, err := Load(target)
			if err != nil {
				log.Error("reload failed, keeping previous config", map[string]any{"err": err})
				continue
			}
			log.Info("config reloaded", nil)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", map[string]any{"err": err})
		}
	}
}
