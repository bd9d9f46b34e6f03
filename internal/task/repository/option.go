package repository

// FileOptions configures the JSON file backed slot.
type FileOptions struct {
	Dir string // Directory holding <SlotKey>.json
}

// SQLiteOptions configures the embedded SQLite backed slot.
type SQLiteOptions struct {
	Path string // Database file path, or ":memory:"
}
