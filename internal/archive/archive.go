package archive

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/VOLLPilates/assetforge/internal/utils"
)

// SaveOriginal persists the fetched bytes verbatim as
// <name>.orig.<ext> under dir, creating the directory as needed and
// overwriting any previous copy. The archived original is the audit
// and reprocessing source, so it is written before any transcoding
// can fail. Returns the path written.
func SaveOriginal(dir, name, sourceURL string, blob []byte) (string, error) {
	log := utils.GetLogger("archive")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	outPath := filepath.Join(dir, fmt.Sprintf("%s.orig.%s", name, SourceExt(sourceURL)))
	if err := writeFile(outPath, blob); err != nil {
		return "", err
	}
	log.Debug().Str("path", outPath).Int("bytes", len(blob)).Msg("Original archived")
	return outPath, nil
}

// SourceExt derives the archived extension from the URL's path,
// lower-cased, with query string and fragment ignored. URLs without
// an extension archive as .bin.
func SourceExt(sourceURL string) string {
	p := sourceURL
	if u, err := url.Parse(sourceURL); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return "bin"
	}
	return ext
}

// writeFile lands the bytes through a temp file and rename so a
// crashed run never leaves a truncated archive behind.
func writeFile(outPath string, blob []byte) error {
	tempPath := outPath + ".part"
	if err := os.WriteFile(tempPath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", outPath, err)
	}
	if err := os.Rename(tempPath, outPath); err != nil {
		return fmt.Errorf("error finalizing %s: %w", outPath, err)
	}
	return nil
}

// WriteVerbatim exposes the same atomic write for passthrough
// outputs.
func WriteVerbatim(outPath string, blob []byte) error {
	return writeFile(outPath, blob)
}
