package conf

var (
	Conf *Config

	// set by cmd flags
	DataDir string
	Debug   bool

	StoragesLoaded = false
)
