package models

// RecordStore holds the records of one parsed log in file order.
// It lives for a single pipeline run.
type RecordStore struct {
	records []*LogRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// NewRecordStoreFrom builds a store from already parsed records, keeping their order.
func NewRecordStoreFrom(records ...*LogRecord) *RecordStore {
	store := &RecordStore{records: make([]*LogRecord, 0, len(records))}
	for _, record := range records {
		store.Append(record)
	}
	return store
}

func (s *RecordStore) Append(record *LogRecord) {
	if record == nil {
		return
	}
	s.records = append(s.records, record)
}

// Len returns the number of records. A nil store is empty.
func (s *RecordStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

func (s *RecordStore) IsEmpty() bool {
	return s.Len() == 0
}

// Records returns the records in file order.
// The returned slice must not be modified by callers.
func (s *RecordStore) Records() []*LogRecord {
	if s == nil {
		return nil
	}
	return s.records
}
