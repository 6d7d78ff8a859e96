package auth

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"
)

const refreshTokenFile = "refresh_tokens.json"

var refreshTokenStore = map[string]string{}
var mu sync.Mutex

func RefreshTokens() map[string]string {
	if len(refreshTokenStore) == 0 {
		exists, err := fileExists(refreshTokenFile)
		if err != nil {
			log.Println("Error loading refresh token file")
		}

		if exists {
			loadRefreshTokens()
		}
	}

	return refreshTokenStore
}

func SetRefreshToken(key string, value string) {
	mu.Lock()
	refreshTokenStore[key] = value
	saveRefreshTokens()
	mu.Unlock()
}

func DeleteRefreshToken(key string) {
	mu.Lock()
	delete(refreshTokenStore, key)
	saveRefreshTokens()
	mu.Unlock()
}

// StartRefreshTokenCleaner periodically drops tokens whose JWT no longer
// parses (expired or signed with a rotated secret).
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		for key, tokenStr := range refreshTokenStore {
			if token, err := ParseToken(tokenStr); err != nil || !token.Valid {
				delete(refreshTokenStore, key)
			}
		}
		saveRefreshTokens()
		mu.Unlock()
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func loadRefreshTokens() error {
	data, err := os.ReadFile(refreshTokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			refreshTokenStore = map[string]string{}
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &refreshTokenStore)
}

func saveRefreshTokens() error {
	data, err := json.MarshalIndent(refreshTokenStore, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(refreshTokenFile, data, 0600)
}
