package finance

import (
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"encoding/json"
)

// http utils to deal with remote quote services.

// fetchJSON performs an HTTP GET and unmarshals the JSON response into data.
// Successful bodies are cached on disk with a key that changes every day, so
// repeated fetches within a day never hit the remote service twice.
func fetchJSON(client *http.Client, addr string, data any) error {
	key := fmt.Sprintf("%x", sha1.Sum([]byte(Today().String()+" GET "+addr)))
	cacheFile := filepath.Join(os.TempDir(), key)

	if content, err := os.ReadFile(cacheFile); err == nil {
		// Cache hit.
		return json.Unmarshal(content, data)
	}

	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("GET %v/%v %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cacheFile, content, 0644); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return json.Unmarshal(content, data)
}
