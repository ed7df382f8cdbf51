package constants

const (
	AppName           = "lamiope"
	DefaultConfigPath = "~/.config/lamiope/lamiope.db"
	Version           = "v1.0.0"

	// StoreVersion is the schema version of the persisted ledger blob.
	StoreVersion = 3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lamiope-"
)
