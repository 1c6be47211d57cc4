// Sidebar snapshot reading

package arc

import (
	"fmt"
	"log/slog"
	"os"
)

// ReadSidebar loads the sidebar snapshot fully into memory. An explicit
// path wins; otherwise a snapshot in the current directory is preferred
// over the one in Arc's data directory.
func ReadSidebar(explicit string) ([]byte, error) {
	slog.Info("reading sidebar JSON")

	if explicit != "" {
		data, err := os.ReadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", explicit, err)
		}
		return data, nil
	}

	if _, err := os.Stat(SidebarFilename); err == nil {
		slog.Debug("found sidebar file in current directory", "file", SidebarFilename)
		return os.ReadFile(SidebarFilename)
	}

	path, err := FindDataPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s", LocateHint())
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	slog.Debug("found sidebar file in Arc data directory", "path", path)
	return data, nil
}
