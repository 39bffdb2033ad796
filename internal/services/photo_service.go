package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

const photosPerPlace = 6

// PhotoServiceInterface finds photo URLs for a destination. Lookups are
// best-effort: any failure yields an empty list, never an error the
// wizard has to handle.
type PhotoServiceInterface interface {
	SearchPhotos(ctx context.Context, query string) []string
}

type UnsplashPhotoService struct {
	httpClient *http.Client
	accessKey  string
	baseURL    string
}

func NewUnsplashPhotoService() PhotoServiceInterface {
	return &UnsplashPhotoService{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		accessKey:  os.Getenv("UNSPLASH_ACCESS_KEY"),
		baseURL:    "https://api.unsplash.com/search/photos",
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (s *UnsplashPhotoService) SearchPhotos(ctx context.Context, query string) []string {
	if s.accessKey == "" {
		return []string{}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprintf("%d", photosPerPlace))
	params.Set("client_id", s.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return []string{}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Failed to search photos for %s: %v", query, err)
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Photo API returned %d for %s", resp.StatusCode, query)
		return []string{}
	}

	var payload unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return []string{}
	}

	urls := make([]string, 0, len(payload.Results))
	for _, photo := range payload.Results {
		if photo.URLs.Regular != "" {
			urls = append(urls, photo.URLs.Regular)
		}
	}
	return urls
}
