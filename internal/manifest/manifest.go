package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/VOLLPilates/assetforge/internal/utils"
)

const (
	FormatWebP = "webp"
	FormatPNG  = "png"

	DefaultQuality = 78
)

//go:embed assets.yaml
var embeddedManifest []byte

// Job is one unit of work: a source URL mapped to an archived
// original plus one or more derivatives under a shared base name.
// Immutable once loaded.
type Job struct {
	ID      string
	URL     string `yaml:"url"`
	Root    string `yaml:"root"`
	Name    string `yaml:"name"`
	Widths  []int  `yaml:"widths"`
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
}

// Manifest is the declarative asset list: named output roots and the
// jobs that populate them.
type Manifest struct {
	Roots map[string]string `yaml:"roots"`
	Jobs  []Job             `yaml:"jobs"`
}

// Dir resolves the output directory for a job's root key.
func (m *Manifest) Dir(job Job) string {
	return m.Roots[job.Root]
}

// Load reads and validates a manifest from the given YAML file.
func Load(path string) (*Manifest, error) {
	log := utils.GetLogger("manifest")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("jobs", len(m.Jobs)).Msg("Manifest loaded")
	return m, nil
}

// LoadEmbedded returns the manifest compiled into the binary, the
// production asset list of the site.
func LoadEmbedded() (*Manifest, error) {
	return Parse(embeddedManifest)
}

// Parse unmarshals a manifest, applies defaults, and validates every
// job. Quality defaults to 78 and format to webp, matching the
// historical behavior of the asset build.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing manifest YAML: %w", err)
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest contains no jobs")
	}
	for i := range m.Jobs {
		job := &m.Jobs[i]
		job.ID = uuid.New().String()
		if job.Format == "" {
			job.Format = FormatWebP
		}
		if job.Quality == 0 {
			job.Quality = DefaultQuality
		}
		if err := validate(&m, job, i); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

func validate(m *Manifest, job *Job, index int) error {
	if job.URL == "" {
		return fmt.Errorf("job %d: missing url", index+1)
	}
	if job.Name == "" {
		return fmt.Errorf("job %d (%s): missing name", index+1, job.URL)
	}
	if _, ok := m.Roots[job.Root]; !ok {
		return fmt.Errorf("job %d (%s): unknown root %q", index+1, job.Name, job.Root)
	}
	switch job.Format {
	case FormatWebP:
		if len(job.Widths) == 0 {
			return fmt.Errorf("job %d (%s): webp jobs need at least one width", index+1, job.Name)
		}
		for _, w := range job.Widths {
			if w <= 0 {
				return fmt.Errorf("job %d (%s): invalid width %d", index+1, job.Name, w)
			}
		}
	case FormatPNG:
		// widths and quality are ignored for verbatim copies
	default:
		return fmt.Errorf("job %d (%s): unsupported format %q", index+1, job.Name, job.Format)
	}
	if job.Quality < 0 || job.Quality > 100 {
		return fmt.Errorf("job %d (%s): quality %d out of range", index+1, job.Name, job.Quality)
	}
	return nil
}
