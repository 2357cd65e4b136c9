// Package syncstate persists SyncState per workspace so background listening survives a restart.
package syncstate

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/internal/fs"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"github.com/uber/cdbg-sync/src/cdbg/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	_nameKey   = "sync-state"
	_configKey = "syncState"
	_fileExt   = ".yaml"
)

// Module provides the SyncState repository to an Fx application.
var Module = fx.Provide(New)

// Repository stores SyncState files, one per workspace, keyed by run configuration name.
type Repository interface {
	// Save writes state, replacing any previous entry for its run configuration.
	Save(state *entity.SyncState) error
	// Load returns the stored state, or RunConfigurationNotFoundError.
	Load(workspaceRoot, runConfiguration string) (*entity.SyncState, error)
	// LoadAll returns every stored state across workspaces.
	LoadAll() ([]*entity.SyncState, error)
	// Delete removes the entry for a run configuration. A missing entry is not an error.
	Delete(workspaceRoot, runConfiguration string) error
}

// Config is the syncState configuration section.
type Config struct {
	Directory string `yaml:"directory"`
}

// Params are the dependencies of the Repository.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.FileSystem
	Logger *zap.SugaredLogger
}

type repository struct {
	mu     sync.Mutex
	dir    string
	fs     fs.FileSystem
	logger *zap.SugaredLogger
}

// New creates a Repository rooted at the configured directory, defaulting to the user config directory.
func New(p Params) (Repository, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if cfg.Directory == "" {
		base, err := p.FS.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving user config dir: %w", err)
		}
		cfg.Directory = filepath.Join(base, "cdbg-sync", "state")
	}

	return &repository{
		dir:    cfg.Directory,
		fs:     p.FS,
		logger: p.Logger.With("plugin", _nameKey),
	}, nil
}

func (r *repository) Save(state *entity.SyncState) error {
	if state == nil {
		return errors.New("can't save nil sync state")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.read(state.WorkspaceRoot)
	if err != nil {
		return err
	}
	f.States[state.RunConfiguration] = mapper.SyncStateToModel(state)
	return r.write(f)
}

func (r *repository) Load(workspaceRoot, runConfiguration string) (*entity.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.read(workspaceRoot)
	if err != nil {
		return nil, err
	}
	m, ok := f.States[runConfiguration]
	if !ok || m == nil {
		return nil, &errors.RunConfigurationNotFoundError{WorkspaceRoot: workspaceRoot, RunConfiguration: runConfiguration}
	}
	return mapper.ModelToSyncState(workspaceRoot, runConfiguration, m), nil
}

func (r *repository) LoadAll() ([]*entity.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.fs.DirExists(r.dir)
	if err != nil {
		return nil, fmt.Errorf("checking %q: %w", r.dir, err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := r.fs.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", r.dir, err)
	}

	var states []*entity.SyncState
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), _fileExt) {
			continue
		}
		f, err := r.decode(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			// One corrupt file must not block resuming the other workspaces.
			r.logger.Warnw("skipping unreadable sync state file", "file", entry.Name(), "error", err)
			continue
		}
		names := make([]string, 0, len(f.States))
		for name := range f.States {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if m := f.States[name]; m != nil {
				states = append(states, mapper.ModelToSyncState(f.WorkspaceRoot, name, m))
			}
		}
	}
	return states, nil
}

func (r *repository) Delete(workspaceRoot, runConfiguration string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.read(workspaceRoot)
	if err != nil {
		return err
	}
	if _, ok := f.States[runConfiguration]; !ok {
		return nil
	}
	delete(f.States, runConfiguration)
	if len(f.States) == 0 {
		return r.fs.Remove(r.path(workspaceRoot))
	}
	return r.write(f)
}

// read returns the file for workspaceRoot, or an empty one if none has been written yet.
func (r *repository) read(workspaceRoot string) (*model.SyncStateFile, error) {
	name := r.path(workspaceRoot)
	exists, err := r.fs.FileExists(name)
	if err != nil {
		return nil, fmt.Errorf("checking %q: %w", name, err)
	}
	if !exists {
		return &model.SyncStateFile{WorkspaceRoot: workspaceRoot, States: make(map[string]*model.SyncState)}, nil
	}
	f, err := r.decode(name)
	if err != nil {
		return nil, err
	}
	if f.WorkspaceRoot != workspaceRoot {
		return nil, fmt.Errorf("sync state file %q belongs to workspace %q", name, f.WorkspaceRoot)
	}
	return f, nil
}

func (r *repository) decode(name string) (*model.SyncStateFile, error) {
	data, err := r.fs.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	var f model.SyncStateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	if f.States == nil {
		f.States = make(map[string]*model.SyncState)
	}
	return &f, nil
}

func (r *repository) write(f *model.SyncStateFile) error {
	if err := r.fs.MkdirAll(r.dir); err != nil {
		return fmt.Errorf("creating %q: %w", r.dir, err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding sync state: %w", err)
	}
	return r.fs.WriteFileAtomic(r.path(f.WorkspaceRoot), data)
}

func (r *repository) path(workspaceRoot string) string {
	h := fnv.New64a()
	h.Write([]byte(workspaceRoot))
	return filepath.Join(r.dir, fmt.Sprintf("%016x%s", h.Sum64(), _fileExt))
}
