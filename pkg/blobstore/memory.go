package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	info ObjectInfo
	data []byte
}

// MemoryStore keeps objects in process memory. It backs development runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (m *MemoryStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src := r
	if size >= 0 {
		src = io.LimitReader(r, size)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read object body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{
		info: ObjectInfo{
			Key:          key,
			Size:         int64(len(data)),
			ContentType:  contentType,
			LastModified: time.Now(),
			Metadata:     normalizeMetadata(metadata),
		},
		data: data,
	}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("get %s: %w", key, ErrNotFound)
	}
	return &Object{
		ObjectInfo: copyInfo(obj.info),
		Body:       io.NopCloser(bytes.NewReader(obj.data)),
	}, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var infos []ObjectInfo
	for key, obj := range m.objects {
		if strings.HasPrefix(key, prefix) {
			infos = append(infos, copyInfo(obj.info))
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

func copyInfo(info ObjectInfo) ObjectInfo {
	meta := make(map[string]string, len(info.Metadata))
	for k, v := range info.Metadata {
		meta[k] = v
	}
	info.Metadata = meta
	return info
}
