package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Names of the document fragments.
const (
	Preamble   = "preamble"
	Subsection = "subsection"
)

const fileSuffix = ".tex.tmpl"

//go:embed defaults/*.tex.tmpl
var defaults embed.FS

// Cache loads fragment templates once. A file <name>.tex.tmpl in the
// override directory replaces the built-in fragment of the same name.
type Cache struct {
	mu        sync.Mutex
	dir       string
	templates map[string]*template.Template
}

// NewCache returns a Cache reading overrides from dir. dir may be empty.
func NewCache(dir string) *Cache {
	return &Cache{
		dir:       dir,
		templates: make(map[string]*template.Template),
	}
}

// Render executes the named fragment with data.
func (c *Cache) Render(name string, data any) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.templates[name]
	if !ok {
		var err error
		if t, err = c.load(name); err != nil {
			return "", err
		}
		c.templates[name] = t
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (c *Cache) load(name string) (*template.Template, error) {
	file := name + fileSuffix
	if filepath.Base(file) != file {
		return nil, fmt.Errorf("invalid template name %q", name)
	}

	var (
		data []byte
		err  error
	)
	if c.dir != "" {
		data, err = os.ReadFile(filepath.Join(c.dir, file))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read template %s: %w", file, err)
		}
	}
	if data == nil {
		data, err = defaults.ReadFile("defaults/" + file)
		if err != nil {
			return nil, fmt.Errorf("unknown template %q", name)
		}
	}

	t, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", file, err)
	}
	return t, nil
}
