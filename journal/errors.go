package journal

import "codeberg.org/verist/errkit/errchain"

const (
	// Configuration Errors
	ErrInvalidDBPath = errchain.Code("journal_invalid_db_path")

	// Storage Errors
	ErrStorageInit   = errchain.Code("journal_storage_init_failed")
	ErrStorageAccess = errchain.Code("journal_storage_access_failed")
	ErrStorageRead   = errchain.Code("journal_storage_read_failed")
	ErrStorageClose  = errchain.Code("journal_storage_close_failed")
)
