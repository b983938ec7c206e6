package interfaces

// IFormCache is keyed draft persistence for in-progress forms.
//
// Load reports (false, nil) for missing entries and for entries that fail to
// parse; a corrupt entry is deleted rather than surfaced as an error so a bad
// draft can never block the user-facing flow.

type IFormCache interface {
	Save(key string, v any) error
	Load(key string, v any) (bool, error)
	Clear(key string) error
}
