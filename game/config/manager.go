package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/patchank/assemblage/game/engine"
)

// Manager handles rule set loading and caching
type Manager struct {
	configDir      string
	defaultRuleSet *RuleSet
	ruleSets       map[string]*RuleSet
	logger         logrus.FieldLogger
	mu             sync.RWMutex
}

// NewManager creates a new rule set manager over a config directory
func NewManager(configDir string, logger logrus.FieldLogger) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := &Manager{
		configDir: configDir,
		ruleSets:  make(map[string]*RuleSet),
		logger:    logger.WithField("config_dir", configDir),
	}

	if err := m.loadDefaultRuleSet(); err != nil {
		return nil, fmt.Errorf("failed to load default rule set: %w", err)
	}

	return m, nil
}

// Dir returns the directory rule sets are read from
func (m *Manager) Dir() string {
	return m.configDir
}

// LoadRuleSet loads a rule set by name. The standard rule set is built in and
// is served when no file of that name exists.
func (m *Manager) LoadRuleSet(name string) (*RuleSet, error) {
	name, err := ruleSetID(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	if rs, exists := m.ruleSets[name]; exists {
		m.mu.RUnlock()
		return rs, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rs, exists := m.ruleSets[name]; exists {
		return rs, nil
	}

	rs, err := LoadFile(filepath.Join(m.configDir, name+".json"))
	if errors.Is(err, ErrRuleSetNotFound) {
		if name != StandardName {
			return nil, fmt.Errorf("%q: %w", name, ErrRuleSetNotFound)
		}
		rs, err = StandardRuleSet(), nil
	}
	if err != nil {
		return nil, err
	}

	m.ruleSets[name] = rs
	return rs, nil
}

// Build loads a rule set and freezes it into the engine inputs
func (m *Manager) Build(name string) (*engine.Catalog, engine.Rules, error) {
	rs, err := m.LoadRuleSet(name)
	if err != nil {
		return nil, engine.Rules{}, err
	}
	catalog, err := rs.Catalog()
	if err != nil {
		return nil, engine.Rules{}, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	return catalog, rs.Rules, nil
}

// ListRuleSets returns information about all available rule sets.
// Invalid files are skipped with a warning.
func (m *Manager) ListRuleSets() ([]*RuleSetInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var infos []*RuleSetInfo
	hasStandard := false

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		rs, err := m.LoadRuleSet(name)
		if err != nil {
			m.logger.WithError(err).WithField("file", entry.Name()).Warn("Skipping invalid rule set")
			continue
		}

		info := rs.Info(name)
		info.Filename = entry.Name()
		infos = append(infos, info)
		if name == StandardName {
			hasStandard = true
		}
	}

	if !hasStandard {
		info := StandardRuleSet().Info(StandardName)
		info.BuiltIn = true
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// GetDefault returns the default rule set
func (m *Manager) GetDefault() *RuleSet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRuleSet
}

// SetDefault sets the default rule set by name
func (m *Manager) SetDefault(name string) error {
	rs, err := m.LoadRuleSet(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRuleSet = rs
	return nil
}

// RefreshCache drops cached rule sets and reloads the default from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.ruleSets = make(map[string]*RuleSet)
	m.mu.Unlock()

	return m.loadDefaultRuleSet()
}

// loadDefaultRuleSet resolves the standard rule set, from disk when overridden
func (m *Manager) loadDefaultRuleSet() error {
	rs, err := m.LoadRuleSet(StandardName)
	if err != nil {
		m.logger.WithError(err).Warn("Falling back to built-in standard rule set")
		rs = StandardRuleSet()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRuleSet = rs
	return nil
}

// SaveRuleSet validates a rule set and writes it to disk
func (m *Manager) SaveRuleSet(name string, rs *RuleSet) error {
	if err := ValidateRuleSet(rs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	name, err := ruleSetID(name)
	if err != nil {
		return err
	}
	path := filepath.Join(m.configDir, name+".json")

	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rule set: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write rule set file: %w", err)
	}

	m.mu.Lock()
	m.ruleSets[name] = rs
	m.mu.Unlock()

	m.logger.WithField("rule_set", name).Info("Saved rule set")
	return nil
}

// ruleSetID trims the .json suffix and rejects names that would resolve
// outside the config directory
func ruleSetID(name string) (string, error) {
	id := strings.TrimSuffix(name, ".json")
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidRuleSetName)
	}
	return id, nil
}
