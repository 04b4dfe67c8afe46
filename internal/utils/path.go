package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the boggle binaries
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
	dataDir        string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
		dataDir:        getDataDir(homeDir),
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, pr.configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin": // macOS
		return filepath.Join(homeDir, ".config", "boggle")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "boggle")
		}
		return filepath.Join(homeDir, ".config", "boggle")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "boggle")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "boggle")
	default:
		return filepath.Join(homeDir, ".boggle")
	}
}

// getDataDir returns the directory word lists are looked up in when the
// given path resolves nowhere else
func getDataDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, "boggle")
		}
		return filepath.Join(homeDir, ".local", "share", "boggle")
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "boggle")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "boggle")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "boggle")
	default:
		return filepath.Join(homeDir, ".boggle")
	}
}

// GetDictionaryPath resolves a word list file from the user-specified path.
// It tries multiple locations in order of preference:
// 1. The path as given (absolute, or relative to the working directory)
// 2. Relative to the executable directory
// 3. Inside the platform data directory
// 4. Inside the config directory
func (pr *PathResolver) GetDictionaryPath(userSpecifiedPath string) (string, error) {
	var candidatePaths []string

	if filepath.IsAbs(userSpecifiedPath) {
		candidatePaths = append(candidatePaths, userSpecifiedPath)
	} else {
		if cwd, err := os.Getwd(); err == nil {
			candidatePaths = append(candidatePaths, filepath.Join(cwd, userSpecifiedPath))
		}
		candidatePaths = append(candidatePaths,
			filepath.Join(pr.executableDir, userSpecifiedPath),
			filepath.Join(pr.dataDir, userSpecifiedPath),
			filepath.Join(pr.configDir, userSpecifiedPath),
		)
	}

	for _, path := range candidatePaths {
		if isRegularFile(path) {
			log.Debugf("Found word list: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}

	// Return the most likely path for error reporting
	return candidatePaths[0], os.ErrNotExist
}

func isRegularFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}

// GetConfigPath returns the full path for a config file
// It ensures the config directory exists and handles read-only filesystem issues
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	configPath := filepath.Join(pr.configDir, filename)
	if pr.ensureConfigDir(pr.configDir) {
		return configPath, nil
	}

	// Fallback locations if config dir is not writable
	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".boggle"),
		filepath.Join(os.TempDir(), "boggle"),
		pr.executableDir,
	}

	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	// Last resort: return temp file path
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create config directory %s: %v", dir, err)
		return false
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("Config directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}

// GetExecutableDir returns the directory containing the executable
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// GetDataDir returns the platform data directory word lists are installed to
func (pr *PathResolver) GetDataDir() string {
	return pr.dataDir
}
