package kvstore

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv"
)

// Disk stores each key as a file under a base directory.
type Disk struct {
	d *diskv.Diskv
}

// NewDisk uses dir as the diskv base path, creating it on first write.
func NewDisk(dir string) (*Disk, error) {
	if dir == "" {
		return nil, errors.New("disk storage directory is required")
	}

	d := diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1 << 20,
	})
	return &Disk{d: d}, nil
}

func (s *Disk) Get(key string) ([]byte, bool, error) {
	if err := validateDiskKey(key); err != nil {
		return nil, false, err
	}

	value, err := s.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Disk) Set(key string, value []byte) error {
	if err := validateDiskKey(key); err != nil {
		return err
	}
	return s.d.Write(key, value)
}

func (s *Disk) Delete(key string) error {
	if err := validateDiskKey(key); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// Close is a no-op; diskv holds no open handles.
func (s *Disk) Close() error {
	return nil
}

// Keys become file names, so separators are rejected.
func validateDiskKey(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q is not a valid file name", ErrInvalidKey, key)
	}
	return nil
}
