package codebase

import (
	"os"
	"sort"
	"sync"
	"time"
)

const DefaultPollInterval = 1 * time.Second

// FileWatcher polls the project's source files and keeps a Codebase in
// sync with them.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange, if set, is called after a scan that saw changes.
	OnChange func(changed, removed []string)
}

func NewFileWatcher(c *Codebase, interval time.Duration) *FileWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

// Start polls in a new goroutine until Stop is called. The first scan runs
// immediately.
func (w *FileWatcher) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop ends polling and waits for a scan in progress to finish, so OnChange
// is never called after Stop returns.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *FileWatcher) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	select {
	case <-w.stopCh:
		return
	default:
		w.Scan()
	}

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan runs a single poll: new and modified files are parsed again and
// vanished ones are dropped from the codebase.
func (w *FileWatcher) Scan() (changed, removed []string) {
	paths, err := w.codebase.Project().SourceFiles()
	if err != nil {
		log.Errorf("watch: %s", err)
		return nil, nil
	}

	current := make(map[string]bool, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		current[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			if err := w.codebase.ScanFile(path); err != nil {
				log.Warningf("watch: %s", err)
				continue
			}
			changed = append(changed, path)
		}
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			removed = append(removed, path)
		}
	}

	sort.Strings(removed)

	if len(changed)+len(removed) > 0 {
		log.Debugf("watch: %d changed, %d removed", len(changed), len(removed))
		if w.OnChange != nil {
			w.OnChange(changed, removed)
		}
	}
	return changed, removed
}
