package storage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/supabase-community/supabase-go"

	"remix-gallery-server/modules/common/config"
)

// Sink decides where video/poster bytes live. The gallery record only ever
// sees the resulting URL: a Supabase public object URL or a data URI.
type Sink interface {
	Save(data []byte, mime string, prefix string) (string, error)
}

// DataURISink - embeds bytes directly into the record as a data URI.
// This is the default when no object storage is configured.
type DataURISink struct{}

func (DataURISink) Save(data []byte, mime string, _ string) (string, error) {
	return DataURI(data, mime), nil
}

// DataURI - self-contained playable representation of raw bytes
func DataURI(data []byte, mime string) string {
	if mime == "" {
		mime = "video/mp4"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SupabaseSink - uploads bytes to a Supabase Storage bucket and returns the
// public object URL.
type SupabaseSink struct {
	client *supabase.Client
	cfg    *config.Config
}

// NewSupabaseSink - storage client for the configured bucket
func NewSupabaseSink(cfg *config.Config) (*SupabaseSink, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	log.Printf("✅ Supabase storage sink initialized (bucket: %s)", cfg.StorageBucket)
	return &SupabaseSink{client: client, cfg: cfg}, nil
}

func (s *SupabaseSink) Save(data []byte, mime string, prefix string) (string, error) {
	if mime == "" {
		mime = "video/mp4"
	}

	timestamp := time.Now().UnixNano() / int64(time.Millisecond)
	objectPath := fmt.Sprintf("%s/%d_%06d%s", prefix, timestamp, rand.Intn(999999), extFor(mime))

	log.Printf("📤 Uploading %d bytes to storage: %s", len(data), objectPath)

	_, err := s.client.Storage.UploadFile(s.cfg.StorageBucket, objectPath, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload to storage: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.cfg.SupabaseURL, s.cfg.StorageBucket, objectPath)

	log.Printf("✅ Uploaded successfully: %s", publicURL)
	return publicURL, nil
}

// extFor - file extension for the handful of mime types we store
func extFor(mime string) string {
	switch mime {
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	case "image/webp":
		return ".webp"
	case "image/png":
		return ".png"
	default:
		return ".mp4"
	}
}
