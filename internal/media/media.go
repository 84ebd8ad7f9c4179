package media

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"glossconv/internal/gloss"
)

// Available returns true if ffprobe is on the PATH.
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// mimeFromExt returns the MIME type ELAN records for common media extensions.
func mimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".wav":
		return "audio/x-wav"
	case ".mp3":
		return "audio/mpeg"
	case ".mp4", ".m4a":
		return "video/mp4"
	case ".mpg", ".mpeg":
		return "video/mpeg"
	case ".ogg":
		return "audio/ogg"
	default:
		return "unknown"
	}
}

// Descriptor builds the media descriptor for an annotation document written
// to outputPath. The relative URL is computed from the output directory.
func Descriptor(mediaPath, outputPath string) (*gloss.MediaDescriptor, error) {
	abs, err := filepath.Abs(mediaPath)
	if err != nil {
		return nil, fmt.Errorf("resolve media path: %w", err)
	}
	d := &gloss.MediaDescriptor{
		URL:      (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		MIMEType: mimeFromExt(filepath.Ext(abs)),
	}

	outDir, err := filepath.Abs(filepath.Dir(outputPath))
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if rel, err := filepath.Rel(outDir, abs); err == nil {
		rel = filepath.ToSlash(rel)
		if !strings.HasPrefix(rel, "../") {
			rel = "./" + rel
		}
		d.RelativeURL = rel
	}
	return d, nil
}

// probeOutput mirrors ffprobe JSON structure.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration uses ffprobe to get the media duration in milliseconds.
func ProbeDuration(ctx context.Context, path string) (int64, error) {
	if !Available() {
		return 0, fmt.Errorf("ffprobe not found")
	}

	cmd := exec.CommandContext(ctx,
		"ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, fmt.Errorf("ffprobe JSON parse error: %w", err)
	}

	sec, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", probe.Format.Duration, err)
	}
	return int64(sec * 1000), nil
}

// CheckCoverage warns about utterances that end after the media does. It is
// a no-op when ffprobe is missing or cannot read the file.
func CheckCoverage(ctx context.Context, path string, utterances []gloss.Utterance) int {
	duration, err := ProbeDuration(ctx, path)
	if err != nil {
		slog.Debug("skipping media coverage check", "media", filepath.Base(path), "err", err)
		return 0
	}
	return countBeyond(duration, utterances, filepath.Base(path))
}

func countBeyond(duration int64, utterances []gloss.Utterance, name string) int {
	n := 0
	for i, u := range utterances {
		if u.Finish.Ms > duration {
			slog.Warn("utterance ends after media",
				"utterance", i+1,
				"finish", gloss.FormatTimecode(u.Finish.Ms),
				"media", name,
				"media_duration", gloss.FormatTimecode(duration))
			n++
		}
	}
	return n
}
