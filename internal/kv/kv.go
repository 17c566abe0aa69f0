package kv

import "errors"

var ErrNoKey = errors.New("key not found")

// Store - контракт хранилища ключ-значение: ровно то, что нужно ядру
// (get/set/remove/перечисление ключей), ничего сверх.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}
