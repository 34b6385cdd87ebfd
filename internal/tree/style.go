package tree

import (
	"os"
	"strings"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/chmouel/gitstatustree/internal/status"
	"github.com/chmouel/gitstatustree/internal/theme"
)

// conflictCodes are the unmerged XY combinations listed in
// git-status(1); they render fully in the conflict color, like
// untracked and ignored entries.
var conflictCodes = map[string]struct{}{
	"DD": {}, "AU": {}, "UD": {}, "UA": {}, "DU": {}, "AA": {}, "UU": {},
}

// Styler decorates rendered lines with colors and optional file icons.
// With both disabled it reproduces Line.Text exactly.
type Styler struct {
	palette *theme.Palette
	color   bool
	icons   bool
}

// NewStyler builds a Styler. color and icons toggle the respective
// decorations.
func NewStyler(palette *theme.Palette, color, icons bool) *Styler {
	return &Styler{palette: palette, color: color, icons: icons}
}

// Format returns the display string for one rendered line.
func (s *Styler) Format(l Line) string {
	prefix := l.Prefix
	name := l.Name
	code := l.Code

	if s.icons {
		if icon := deviconForName(strings.TrimSuffix(l.Name, "/"), l.IsDir); icon != "" {
			name = icon + " " + name
		}
	}

	if s.color {
		prefix = s.palette.Dir.Render(prefix)
		if l.IsDir {
			name = s.palette.Dir.Render(name)
		}
		if code != "" {
			code = s.formatCode(code)
		}
	}

	if code == "" {
		return prefix + name
	}
	return prefix + code + " " + name
}

// formatCode colors the two code positions independently: X in the
// staged color, Y in the unstaged color, placeholders untouched.
// Untracked, ignored and unmerged codes are colored whole.
func (s *Styler) formatCode(code string) string {
	if isConflictCode(code) {
		return s.palette.Conflict.Render(code)
	}

	var b strings.Builder
	for i, char := range code {
		if char == status.Placeholder {
			b.WriteRune(char)
			continue
		}
		if i == 0 {
			b.WriteString(s.palette.Staged.Render(string(char)))
		} else {
			b.WriteString(s.palette.Unstaged.Render(string(char)))
		}
	}
	return b.String()
}

func isConflictCode(code string) bool {
	if code == "" {
		return false
	}
	if code[0] == '?' || code[0] == '!' {
		return true
	}
	_, ok := conflictCodes[code]
	return ok
}

// iconFileInfo satisfies os.FileInfo with just enough shape for
// devicons to pick an icon by name and kind.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

func deviconForName(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	return devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir}).Icon
}
