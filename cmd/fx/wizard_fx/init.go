package wizard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/api/controllers"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideSessionRepo,
	provideAgentService,
	provideFormatService,
	provideWizardService,
	provideWizardController)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideAgentService(aiClient utils.GenerationClientInterface) services.AgentServiceInterface {
	return services.NewAgentService(aiClient)
}

func provideFormatService() services.FormatServiceInterface {
	return services.NewFormatService()
}

func provideWizardService(
	sessionRepo repositories.SessionRepository,
	agentService services.AgentServiceInterface,
	formatService services.FormatServiceInterface,
	weatherService services.WeatherServiceInterface,
	photoService services.PhotoServiceInterface,
) services.WizardServiceInterface {
	return services.NewWizardService(
		sessionRepo,
		agentService,
		formatService,
		weatherService,
		photoService,
	)
}

func provideWizardController(wizardService services.WizardServiceInterface) *controllers.WizardController {
	return controllers.NewWizardController(wizardService)
}
