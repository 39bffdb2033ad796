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

	"github.com/patrickmn/go-cache"

	"yatra/internal/models/response_models"
)

const weatherCacheTTL = 30 * time.Minute

// WeatherServiceInterface reports current conditions for a city. A nil
// snapshot with nil error means weather is unavailable; destination cards
// simply omit it.
type WeatherServiceInterface interface {
	GetCurrentWeather(ctx context.Context, cityName string) (*response_models.WeatherSnapshot, error)
}

type OpenWeatherService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      *cache.Cache
}

func NewOpenWeatherService() WeatherServiceInterface {
	return &OpenWeatherService{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiKey:     os.Getenv("OPENWEATHER_API_KEY"),
		baseURL:    "http://api.openweathermap.org/data/2.5/weather",
		cache:      cache.New(weatherCacheTTL, 10*time.Minute),
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (s *OpenWeatherService) GetCurrentWeather(ctx context.Context, cityName string) (*response_models.WeatherSnapshot, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	if cached, found := s.cache.Get(cityName); found {
		snapshot := cached.(response_models.WeatherSnapshot)
		return &snapshot, nil
	}

	params := url.Values{}
	params.Set("q", cityName)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Failed to fetch weather for %s: %v", cityName, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API returned %d for %s", resp.StatusCode, cityName)
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	snapshot := response_models.WeatherSnapshot{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		snapshot.Description = payload.Weather[0].Description
	}

	s.cache.Set(cityName, snapshot, cache.DefaultExpiration)
	return &snapshot, nil
}
