// Package project locates a Snek project on disk and loads its settings.
//
// A project root holds an optional snek.toml (or snek.yaml / snek.yml).
// Without one the defaults apply: sources live in src/ and end in .snek.
// The SNEK_MAX_DEPTH, SNEK_VERBOSITY and SNEK_LOG_FILE environment variables
// override the file.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/snek/parser"
)

const (
	DefaultExtension = ".snek"
	DefaultSourceDir = "src"
)

// ConfigFiles lists the file names Load looks for, in order.
var ConfigFiles = []string{"snek.toml", "snek.yaml", "snek.yml"}

var log = commonlog.GetLogger("snek.project")

type Config struct {
	Name       string       `toml:"name" yaml:"name"`
	SourceDirs []string     `toml:"source_dirs" yaml:"source_dirs"`
	Extension  string       `toml:"extension" yaml:"extension"`
	Parser     ParserConfig `toml:"parser" yaml:"parser"`
	Log        LogConfig    `toml:"log" yaml:"log"`
}

type ParserConfig struct {
	// MaxDepth bounds syntactic nesting; 0 disables the check.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// Project is a loaded project: its root directory and effective settings.
type Project struct {
	RootDir    string
	ConfigFile string // empty when running on defaults
	Config     Config
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(name string) Config {
	return Config{
		Name:       name,
		SourceDirs: []string{DefaultSourceDir},
		Extension:  DefaultExtension,
		Parser:     ParserConfig{MaxDepth: parser.DefaultMaxDepth},
	}
}

// Load reads the project in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads the project rooted at rootDir.
func LoadFrom(rootDir string) (*Project, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	proj := &Project{
		RootDir: rootDir,
		Config:  DefaultConfig(filepath.Base(abs)),
	}

	for _, name := range ConfigFiles {
		path := filepath.Join(rootDir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := decodeConfig(path, data, &proj.Config); err != nil {
			return nil, err
		}
		proj.ConfigFile = path
		log.Debugf("loaded %s", path)
		break
	}

	proj.Config.applyEnvironment()
	if err := proj.Config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", proj.configName(), err)
	}
	return proj, nil
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		for _, key := range md.Undecoded() {
			log.Warningf("%s: unknown key %q", path, key.String())
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	default:
		return fmt.Errorf("unsupported config file %s", path)
	}
	return nil
}

func (c *Config) applyEnvironment() {
	c.Parser.MaxDepth = envInt("SNEK_MAX_DEPTH", c.Parser.MaxDepth)
	c.Log.Verbosity = envInt("SNEK_VERBOSITY", c.Log.Verbosity)
	c.Log.File = env.Str("SNEK_LOG_FILE", c.Log.File)
}

// envInt reads an integer override. A value that is not an integer is
// ignored with a warning.
func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(env.Str(name))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warningf("ignoring %s=%q: not an integer", name, raw)
		return fallback
	}
	return n
}

func (c *Config) validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if len(c.SourceDirs) == 0 {
		c.SourceDirs = []string{DefaultSourceDir}
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	return nil
}

func (p *Project) configName() string {
	if p.ConfigFile == "" {
		return "project config"
	}
	return p.ConfigFile
}

// ParserOptions returns the parser settings of the project.
func (p *Project) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(p.Config.Parser.MaxDepth)}
}

// IsSource reports whether path names a Snek source file.
func (p *Project) IsSource(path string) bool {
	return filepath.Ext(path) == p.Config.Extension
}

// SourceDirs returns the source directories joined onto the root.
func (p *Project) SourceDirs() []string {
	dirs := make([]string, len(p.Config.SourceDirs))
	for i, dir := range p.Config.SourceDirs {
		if filepath.IsAbs(dir) {
			dirs[i] = dir
		} else {
			dirs[i] = filepath.Join(p.RootDir, dir)
		}
	}
	return dirs
}

// SourceFiles walks the source directories and returns every source file,
// sorted. Missing source directories are skipped; hidden directories are
// not entered.
func (p *Project) SourceFiles() ([]string, error) {
	var files []string
	for _, dir := range p.SourceDirs() {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					log.Debugf("source directory %s does not exist", dir)
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if p.IsSource(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Init writes a default snek.toml into dir, creating dir when needed.
// It fails if any config file is already present.
func Init(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	for _, name := range ConfigFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return "", fmt.Errorf("%s already exists in %s", name, dir)
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	cfg := DefaultConfig(filepath.Base(abs))

	path := filepath.Join(dir, ConfigFiles[0])
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", ConfigFiles[0], err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("write %s: %w", ConfigFiles[0], err)
	}
	if err := os.MkdirAll(filepath.Join(dir, DefaultSourceDir), 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", DefaultSourceDir, err)
	}
	log.Infof("initialized project %s", cfg.Name)
	return path, nil
}
