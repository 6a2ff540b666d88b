package persistence

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mako10k/ishell/internal/vfs"
)

// CurrentSchemaVersion is the stable version string stamped into every
// saved snapshot (spec 6: "the current schema version is a stable string;
// mismatches invoke a migration hook").
const CurrentSchemaVersion = "1"

// Blob keys (spec 6: "filesystem blob, mode blob, version blob, *-backup-*
// blobs").
const (
	KeyFilesystem = "fs"
	KeyMode       = "mode"
	KeyVersion    = "version"
	backupPrefix  = "fs-backup-"
)

const (
	defaultDebounce = 500 * time.Millisecond
	maxDebounce     = 2 * time.Second
)

// snapshot is the JSON-serialized form of a vfs.State plus session metadata
// (spec 4.B: "a JSON-like structural serialisation of the tree plus
// {mode, version, saved_at, current_path}").
type snapshot struct {
	Mode        string    `json:"mode"`
	Version     string    `json:"version"`
	SavedAt     time.Time `json:"saved_at"`
	CurrentPath []string  `json:"current_path"`
	Generation  string    `json:"generation"`
	Root        *nodeDTO  `json:"root"`
}

type nodeDTO struct {
	Name        string              `json:"name"`
	Kind        vfs.NodeKind        `json:"kind"`
	Permissions string              `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
	ModifiedAt  time.Time           `json:"modified_at"`
	Size        int64               `json:"size"`
	Content     string              `json:"content,omitempty"`
	Children    map[string]*nodeDTO `json:"children,omitempty"`
}

func toDTO(n *vfs.Node) *nodeDTO {
	dto := &nodeDTO{
		Name:        n.Name,
		Kind:        n.Kind,
		Permissions: n.Permissions,
		CreatedAt:   n.CreatedAt,
		ModifiedAt:  n.ModifiedAt,
		Size:        n.Size,
		Content:     n.Content,
	}
	if n.Kind == vfs.KindDirectory {
		dto.Children = make(map[string]*nodeDTO, len(n.Children))
		for name, child := range n.Children {
			dto.Children[name] = toDTO(child)
		}
	}
	return dto
}

func fromDTO(dto *nodeDTO) *vfs.Node {
	n := &vfs.Node{
		Name:        dto.Name,
		Kind:        dto.Kind,
		Permissions: dto.Permissions,
		CreatedAt:   dto.CreatedAt,
		ModifiedAt:  dto.ModifiedAt,
		Size:        dto.Size,
		Content:     dto.Content,
	}
	if n.Kind == vfs.KindDirectory {
		n.Children = make(map[string]*vfs.Node, len(dto.Children))
		for name, child := range dto.Children {
			n.Children[name] = fromDTO(child)
		}
	}
	return n
}

// Adapter saves and loads vfs.State through a BlobStore, debouncing and
// coalescing saves that are not triggered by a filesystem-modifying command
// (spec 4.B).
type Adapter struct {
	store BlobStore

	mu       sync.Mutex
	timer    *time.Timer
	firstDue time.Time
	lastHash [32]byte
}

// NewAdapter wraps store with debounce/coalesce scheduling.
func NewAdapter(store BlobStore) *Adapter {
	return &Adapter{store: store}
}

// Save immediately serializes and persists state, bypassing the debounce
// timer. Filesystem-modifying commands call this directly (spec 4.B).
func (a *Adapter) Save(state *vfs.State, mode string) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	return a.saveNow(state, mode)
}

// ScheduleSave arms (or re-arms) a debounce timer that will save state when
// it fires, unless a newer call supersedes it first. The timer is re-armed
// to min(debounce, remaining-until-maxDebounce) on every call, so a burst
// of non-modifying commands converges on a single save within maxDebounce
// of the first request (spec 4.B, SPEC_FULL.md component B note).
func (a *Adapter) ScheduleSave(state *vfs.State, mode string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	if a.timer == nil {
		a.firstDue = now.Add(maxDebounce)
	}

	delay := defaultDebounce
	if remaining := time.Until(a.firstDue); remaining < delay {
		delay = remaining
	}
	if delay < 0 {
		delay = 0
	}

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(delay, func() {
		_ = a.saveNow(state, mode)
		a.mu.Lock()
		a.timer = nil
		a.mu.Unlock()
	})
}

// saveNow serializes state, skips the write if its content hash matches the
// last save (coalescing), and otherwise persists the filesystem, mode, and
// version blobs plus a generation-stamped backup blob.
func (a *Adapter) saveNow(state *vfs.State, mode string) error {
	// Content hash is computed over the mode, current path and tree only, not SavedAt or
	// Generation (which change on every call by construction and would
	// defeat coalescing entirely).
	contentOnly := struct {
		Mode        string
		CurrentPath []string
		Root        *nodeDTO
	}{Mode: mode, CurrentPath: state.CurrentPath, Root: toDTO(state.Root)}
	contentBytes, err := json.Marshal(contentOnly)
	if err != nil {
		return fmt.Errorf("hashing filesystem snapshot: %w", err)
	}
	hash := sha256.Sum256(contentBytes)

	a.mu.Lock()
	unchanged := hash == a.lastHash
	a.mu.Unlock()
	if unchanged {
		return nil
	}

	generation := uuid.NewString()
	snap := snapshot{
		Mode:        mode,
		Version:     CurrentSchemaVersion,
		SavedAt:     time.Now(),
		CurrentPath: append([]string{}, state.CurrentPath...),
		Generation:  generation,
		Root:        contentOnly.Root,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializing filesystem snapshot: %w", err)
	}

	if err := a.store.Put(KeyFilesystem, data); err != nil {
		return fmt.Errorf("saving filesystem blob: %w", err)
	}
	if err := a.store.Put(KeyMode, []byte(mode)); err != nil {
		return fmt.Errorf("saving mode blob: %w", err)
	}
	if err := a.store.Put(KeyVersion, []byte(CurrentSchemaVersion)); err != nil {
		return fmt.Errorf("saving version blob: %w", err)
	}
	if err := a.store.Put(backupPrefix+generation, data); err != nil {
		return fmt.Errorf("saving backup blob: %w", err)
	}

	a.mu.Lock()
	a.lastHash = hash
	a.mu.Unlock()
	return nil
}

// HasSaved reports whether a filesystem blob exists.
func (a *Adapter) HasSaved() (bool, error) {
	_, ok, err := a.store.Get(KeyFilesystem)
	return ok, err
}

// Load rehydrates a vfs.State and its mode from the store. A version
// mismatch invokes migrate, which currently is a no-op that simply accepts
// the blob as-is (spec 4.B: "a version mismatch invokes a migration hook
// (currently no-op)").
func (a *Adapter) Load() (*vfs.State, string, error) {
	data, ok, err := a.store.Get(KeyFilesystem)
	if err != nil {
		return nil, "", fmt.Errorf("loading filesystem blob: %w", err)
	}
	if !ok {
		return nil, "", nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, "", fmt.Errorf("parsing filesystem snapshot: %w", err)
	}

	if snap.Version != CurrentSchemaVersion {
		migrate(&snap)
	}

	state := &vfs.State{
		Root:        fromDTO(snap.Root),
		CurrentPath: snap.CurrentPath,
		Home:        []string{"home", "user"},
		PerFileCap:  vfs.DefaultPerFileCap,
		PerDirCap:   vfs.DefaultPerDirCap,
		TotalCap:    vfs.DefaultTotalCap,
	}
	return state, snap.Mode, nil
}

// migrate is the schema migration hook; no migrations are defined yet.
func migrate(snap *snapshot) {
	snap.Version = CurrentSchemaVersion
}

// Clear removes every persisted blob, including backups.
func (a *Adapter) Clear() error {
	for _, key := range []string{KeyFilesystem, KeyMode, KeyVersion} {
		if err := a.store.Delete(key); err != nil {
			return fmt.Errorf("clearing blob %q: %w", key, err)
		}
	}
	backups, err := a.store.Keys(backupPrefix)
	if err != nil {
		return fmt.Errorf("listing backup blobs: %w", err)
	}
	for _, key := range backups {
		if err := a.store.Delete(key); err != nil {
			return fmt.Errorf("clearing backup blob %q: %w", key, err)
		}
	}
	return nil
}
