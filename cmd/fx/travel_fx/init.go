package travel_fx

import (
	"go.uber.org/fx"

	"yatra/internal/services"
)

var Module = fx.Provide(
	provideWeatherService,
	providePhotoService)

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewOpenWeatherService()
}

func providePhotoService() services.PhotoServiceInterface {
	return services.NewUnsplashPhotoService()
}
