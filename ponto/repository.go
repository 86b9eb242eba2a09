package ponto

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/buntdb"
)

// RecordRepository persists the punch ledger as one whole collection.
// Mutations always go through a load-all / save-all cycle.
type RecordRepository interface {
	LoadAll() ([]Record, error)
	SaveAll(records []Record) error
}

// RecordsKey is the single key the serialized collection lives under.
const RecordsKey = "ponto_v1_records"

func NewRecordRepository(db *buntdb.DB) RecordRepository {
	return &recordRepository{db: db}
}

type recordRepository struct {
	db *buntdb.DB
}

// LoadAll returns every stored record. A missing key or a blob that no
// longer unmarshals is treated as an empty collection: the ledger starts
// over rather than wedging the whole tool on unreadable state.
func (r *recordRepository) LoadAll() ([]Record, error) {
	var records []Record
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(RecordsKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(v), &records); err != nil {
			records = nil
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) SaveAll(records []Record) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		if records == nil {
			records = []Record{}
		}
		bs, err := json.Marshal(records)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(RecordsKey, string(bs), nil)
		return err
	})
}
