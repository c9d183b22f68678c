// Package blob описывает контракт внешнего блоб-хранилища и его локальную
// файловую реализацию. Контракт намеренно минимален: put возвращает публичный
// URL, delete принимает ранее выданный URL. Ошибки удаления вызывающий код
// глотает — замена файла не должна падать из-за неудалённого старого блоба.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrForeignURL возвращается при попытке удалить URL, выданный не этим хранилищем.
var ErrForeignURL = errors.New("url does not belong to this blob store")

// Store — контракт блоб-хранилища.
type Store interface {
	// Put сохраняет содержимое по относительному пути и возвращает публичный URL.
	Put(ctx context.Context, path string, r io.Reader) (string, error)
	// Delete удаляет блоб по ранее выданному URL.
	Delete(ctx context.Context, url string) error
}

// LocalStore — файловая реализация Store: baseDir на диске, baseURL наружу.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore создаёт файловое хранилище. baseDir создаётся при необходимости.
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	const op = "blob.NewLocalStore"
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Put сохраняет содержимое и возвращает URL вида <baseURL>/<path>.
func (s *LocalStore) Put(ctx context.Context, path string, r io.Reader) (string, error) {
	const op = "blob.Put"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rel, err := s.cleanRel(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return s.baseURL + "/" + rel, nil
}

// Delete удаляет блоб по выданному ранее URL.
func (s *LocalStore) Delete(_ context.Context, url string) error {
	const op = "blob.Delete"
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrForeignURL)
	}
	rel, err := s.cleanRel(rel)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Owns сообщает, выдан ли URL этим хранилищем. Используется, чтобы не
// пытаться удалять чужие (например, перенесённые) URL.
func (s *LocalStore) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/")
}

func (s *LocalStore) cleanRel(path string) (string, error) {
	rel := strings.TrimPrefix(strings.TrimSpace(path), "/")
	cleaned := filepath.ToSlash(filepath.Clean(rel))
	if cleaned == "." || cleaned == "" || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid blob path %q", path)
	}
	return cleaned, nil
}
