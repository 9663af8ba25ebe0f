package credentials

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fileTokenStore keeps string entries in a JSON object on disk, the way a browser keeps
// them in local storage. The client reads one key per request.
type fileTokenStore struct {
	Path       string
	StorageKey string
	Log        *zap.Logger
	mu         sync.Mutex
}

func NewFileTokenStore(path, storageKey string, logger *zap.Logger) contracts.TokenStore {
	if storageKey == "" {
		storageKey = constvars.DefaultTokenStorageKey
	}
	return &fileTokenStore{
		Path:       path,
		StorageKey: storageKey,
		Log:        logger,
	}
}

func (s *fileTokenStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		s.Log.Error("fileTokenStore.Token error reading storage file",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingStorageKey, s.StorageKey),
			zap.Error(err),
		)
		return "", exceptions.ErrCredentialLookup(err, s.Path)
	}
	return entries[s.StorageKey], nil
}

func (s *fileTokenStore) SaveToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return exceptions.ErrCredentialStore(err, s.Path)
	}
	entries[s.StorageKey] = token

	if err := s.write(entries); err != nil {
		return exceptions.ErrCredentialStore(err, s.Path)
	}

	s.Log.Info("fileTokenStore.SaveToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingStorageKey, s.StorageKey),
	)
	return nil
}

func (s *fileTokenStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return exceptions.ErrCredentialStore(err, s.Path)
	}
	if _, ok := entries[s.StorageKey]; !ok {
		return nil
	}
	delete(entries, s.StorageKey)

	if err := s.write(entries); err != nil {
		return exceptions.ErrCredentialStore(err, s.Path)
	}

	s.Log.Info("fileTokenStore.ClearToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingStorageKey, s.StorageKey),
	)
	return nil
}

// read returns an empty map when the file does not exist yet.
func (s *fileTokenStore) read() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *fileTokenStore) write(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}
