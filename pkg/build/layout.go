package build

import "path/filepath"

const (
	ConfigFileName = "linkbio.yaml"

	assetsDirName    = "assets"
	templatesDirName = "templates"
	outputDirName    = "page"
	logsDirName      = "logs"
	logFileName      = "linkbio_cli.log"
)

// Layout is the set of project paths derived from one root directory.
// Every path is fixed relative to Root; the output assets directory is
// always nested inside the output directory.
type Layout struct {
	Root string
}

func NewLayout(root string) (Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Root: abs}, nil
}

func (l Layout) ConfigPath() string {
	return filepath.Join(l.Root, ConfigFileName)
}

func (l Layout) AssetsDir() string {
	return filepath.Join(l.Root, assetsDirName)
}

func (l Layout) TemplatesDir() string {
	return filepath.Join(l.Root, templatesDirName)
}

func (l Layout) OutputDir() string {
	return filepath.Join(l.Root, outputDirName)
}

func (l Layout) OutputAssetsDir() string {
	return filepath.Join(l.OutputDir(), assetsDirName)
}

func (l Layout) LogFile() string {
	return filepath.Join(l.Root, logsDirName, logFileName)
}
