// Arc data path discovery
// Contains: FindDataPath, LocateHint, WSL handling

package arc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// SidebarFilename is the name of Arc's sidebar snapshot file.
const SidebarFilename = "StorableSidebar.json"

// FindDataPath returns the expected location of the sidebar snapshot for
// the host OS. On Windows and WSL this walks the AppData package
// directory; on macOS and Linux it is a fixed path under Application
// Support. The file itself may or may not exist at the returned path.
func FindDataPath() (string, error) {
	if runtime.GOOS == "windows" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return windowsDataPath(filepath.Join(home, "AppData", "Local", "Packages"))
	}

	if isWSL() {
		root, err := wslPackagesDir()
		if err != nil {
			return "", err
		}
		return windowsDataPath(root)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	path := filepath.Join(home, "Library", "Application Support", "Arc", SidebarFilename)
	slog.Debug("using Arc data path", "path", path)
	return path, nil
}

// windowsDataPath locates the Arc package below an AppData packages
// directory and returns the sidebar path inside it.
func windowsDataPath(packagesDir string) (string, error) {
	if _, err := os.Stat(packagesDir); err != nil {
		return "", fmt.Errorf("AppData packages directory not found: %w", err)
	}

	pkg, err := latestArcPackage(packagesDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(pkg, "LocalCache", "Local", "Arc", SidebarFilename)
	slog.Debug("using Arc package", "package", filepath.Base(pkg), "path", path)
	return path, nil
}

// latestArcPackage picks the Arc package directory under packagesDir,
// preferring the most recently modified one when several installations
// exist.
func latestArcPackage(packagesDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(packagesDir, "TheBrowserCompany.Arc_*"))
	if err != nil {
		return "", err
	}

	var dirs []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("no Arc installation found under %s", packagesDir)
	}
	if len(dirs) > 1 {
		sort.Slice(dirs, func(i, j int) bool {
			return modTime(dirs[i]).After(modTime(dirs[j]))
		})
		slog.Warn("multiple Arc installations found", "using", filepath.Base(dirs[0]))
	}
	return dirs[0], nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// wslPackagesDir finds the Windows AppData packages directory through the
// /mnt/c mount, trying the environment usernames first and falling back to
// scanning C:\Users.
func wslPackagesDir() (string, error) {
	for _, env := range []string{"USERNAME", "USER"} {
		user := os.Getenv(env)
		if user == "" {
			continue
		}
		dir := filepath.Join("/mnt/c/Users", user, "AppData", "Local", "Packages")
		if _, err := os.Stat(dir); err == nil {
			slog.Debug("WSL detected, using Windows path", "user", user)
			return dir, nil
		}
	}

	users, err := os.ReadDir("/mnt/c/Users")
	if err != nil {
		return "", fmt.Errorf("cannot access Windows users directory from WSL: %w", err)
	}
	for _, ent := range users {
		if !ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		dir := filepath.Join("/mnt/c/Users", ent.Name(), "AppData", "Local", "Packages")
		if _, err := os.Stat(dir); err == nil {
			slog.Debug("WSL detected, using Windows path", "user", ent.Name())
			return dir, nil
		}
	}
	return "", fmt.Errorf("could not find Windows AppData directory from WSL")
}

// isWSL reports whether the process runs inside Windows Subsystem for
// Linux.
func isWSL() bool {
	b, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(b)), "microsoft")
}

// LocateHint is the user-facing pointer printed when the sidebar file
// cannot be found.
func LocateHint() string {
	if runtime.GOOS == "windows" || isWSL() {
		return `file not found. Look for the "` + SidebarFilename + `" file within the Arc Browser data folder:
  Windows: "C:\Users\[USERNAME]\AppData\Local\Packages\TheBrowserCompany.Arc_*\LocalCache\Local\Arc\"
  WSL: "/mnt/c/Users/[USERNAME]/AppData/Local/Packages/TheBrowserCompany.Arc_*/LocalCache/Local/Arc/"`
	}
	return `file not found. Look for the "` + SidebarFilename + `" file within the "~/Library/Application Support/Arc/" folder.`
}
