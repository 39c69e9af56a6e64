package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/rango/internal/database"
	"github.com/go-sod/rango/internal/dataset/model"
)

const bucket = "datasets"

var ErrNotFound = errors.New("dataset not found")

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

// Store saves d under its name, replacing any dataset with the same name.
func (db *DB) Store(_ context.Context, d model.Dataset) error {
	bytes, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal dataset %s: %w", d.Name, err)
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put([]byte(d.Name), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) Find(_ context.Context, name string) (model.Dataset, error) {
	var d model.Dataset
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNotFound
		}
		if err := json.Unmarshal(v, &d); err != nil {
			return fmt.Errorf("dataset unmarshal error: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Dataset{}, fmt.Errorf("find dataset %s: %w", name, err)
	}

	return d, nil
}

func (db *DB) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})

	return keys, err
}

func (db *DB) Delete(_ context.Context, name string) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}
