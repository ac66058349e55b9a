package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/theirongolddev/goalsheet/internal/log"
)

// StorageKey is the store key holding the serialized sheet mapping.
const StorageKey = "savedSheets"

// Store is the string key-value collaborator the registry persists through.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Registry is the named collection of saved sheets. It is not safe for
// concurrent use; one owner drives it from discrete user actions.
type Registry struct {
	store   Store
	logger  *log.Logger
	names   []string
	sheets  map[string]Snapshot
	current string
}

// NewRegistry returns an empty registry backed by store. Call Load to read
// previously saved sheets.
func NewRegistry(store Store, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Discard()
	}
	return &Registry{
		store:  store,
		logger: logger.WithComponent(log.ComponentRegistry),
		sheets: make(map[string]Snapshot),
	}
}

// Load replaces the in-memory mapping with the stored one. A missing or
// unreadable blob leaves the registry empty; the failure is only logged.
func (r *Registry) Load() {
	r.names = nil
	r.sheets = make(map[string]Snapshot)
	r.current = ""

	raw, ok, err := r.store.Get(StorageKey)
	if err != nil {
		r.logger.Warn("reading saved sheets failed", log.FieldKey, StorageKey, log.FieldError, err)
		return
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}

	names, sheets, err := DecodeSheets([]byte(raw))
	if err != nil {
		r.logger.Warn("saved sheets are corrupt, starting empty", log.FieldKey, StorageKey, log.FieldError, err)
		return
	}
	r.names, r.sheets = names, sheets
	r.logger.Debug("loaded saved sheets", log.FieldCount, len(names))
}

// Save stores snap under name and writes the whole mapping back to the
// store. A blank name is rejected without touching anything. A failed write
// is logged and otherwise ignored; the in-memory mapping stays updated.
func (r *Registry) Save(name string, snap Snapshot) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if _, exists := r.sheets[name]; !exists {
		r.names = append(r.names, name)
	}
	r.sheets[name] = snap.clone()
	r.current = name
	r.persist()
	return nil
}

// SaveSheet saves s under its own name.
func (r *Registry) SaveSheet(s *Sheet) error {
	return r.Save(s.Name, s.Snapshot())
}

// Names lists saved sheet names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of saved sheets.
func (r *Registry) Len() int { return len(r.names) }

// Get returns a copy of the snapshot saved under name.
func (r *Registry) Get(name string) (Snapshot, bool) {
	snap, ok := r.sheets[name]
	if !ok {
		return Snapshot{}, false
	}
	return snap.clone(), true
}

// Open loads the named sheet into s and marks it current. An empty or
// unknown name resets s to blank and clears the selection.
func (r *Registry) Open(name string, s *Sheet) bool {
	snap, ok := r.sheets[name]
	if name == "" || !ok {
		s.Reset()
		r.current = ""
		return false
	}
	s.LoadFrom(name, snap)
	r.current = name
	return true
}

// Current returns the selected sheet name, empty when none is selected.
func (r *Registry) Current() string { return r.current }

// Export returns the serialized mapping exactly as it is persisted.
func (r *Registry) Export() ([]byte, error) {
	return EncodeSheets(r.names, r.sheets)
}

// Import merges every sheet in data into the registry and persists once.
// Existing names are overwritten. It returns the imported names.
func (r *Registry) Import(data []byte) ([]string, error) {
	names, sheets, err := DecodeSheets(data)
	if err != nil {
		return nil, err
	}
	var imported []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, exists := r.sheets[name]; !exists {
			r.names = append(r.names, name)
		}
		r.sheets[name] = sheets[name]
		imported = append(imported, name)
	}
	if len(imported) > 0 {
		r.persist()
	}
	return imported, nil
}

func (r *Registry) persist() {
	blob, err := r.Export()
	if err != nil {
		r.logger.Error("encoding saved sheets failed", log.FieldError, err)
		return
	}
	if err := r.store.Set(StorageKey, string(blob)); err != nil {
		r.logger.Warn("writing saved sheets failed", log.FieldKey, StorageKey, log.FieldError, err)
		return
	}
	r.logger.Debug("saved sheets written", log.FieldCount, len(r.names))
}

// EncodeSheets serializes the mapping as a JSON object keeping names in order.
func EncodeSheets(names []string, sheets map[string]Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sheets[name])
		if err != nil {
			return nil, fmt.Errorf("encoding sheet %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeSheets parses a JSON object of name to snapshot, returning the names
// in document order. A repeated name keeps its first position and last value.
// Numeric fields are normalized, so a hand-edited or foreign blob cannot
// carry signs, exponents or text into the registry.
func DecodeSheets(data []byte) ([]string, map[string]Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("reading saved sheets: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("saved sheets: expected object, got %v", tok)
	}

	var names []string
	sheets := make(map[string]Snapshot)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading sheet name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("saved sheets: unexpected token %v", tok)
		}
		var snap Snapshot
		if err := dec.Decode(&snap); err != nil {
			return nil, nil, fmt.Errorf("decoding sheet %q: %w", name, err)
		}
		if _, seen := sheets[name]; !seen {
			names = append(names, name)
		}
		sheets[name] = snap.canonical()
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("reading saved sheets: %w", err)
	}
	return names, sheets, nil
}
