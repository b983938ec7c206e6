package interfaces

// IDraftSaver is the debounced write handle a form session holds for its
// cache key. Save schedules the snapshot; Flush persists immediately; Stop
// discards any pending write.

type IDraftSaver interface {
	Save(v any)
	Flush()
	Stop()
}

// DraftSaverFactory builds a saver bound to a cache key.
type DraftSaverFactory func(key string) IDraftSaver
