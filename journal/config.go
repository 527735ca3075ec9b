package journal

import "codeberg.org/verist/errkit/errchain"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "/var/lib/errkit/journal.db"
)

type Config struct {
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errchain.ErrIfKO(errchain.New(ErrInvalidDBPath, "journal database path is empty"))
	}
	return nil
}
