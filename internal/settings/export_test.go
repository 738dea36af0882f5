package settings

// PutRaw stores an undecoded value so tests can simulate corrupt rows.
func (m *MemoryStore) PutRaw(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
}

var SQLiteDSN = sqliteDSN
