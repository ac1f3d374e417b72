package services

import (
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Link = NewLinkService(repos.LinkRepo)
	container.Classifier = NewIntentClassifier()
	container.Recorder = NewExtractionService(
		repos.FundingAccountRepo,
		repos.CategoryRepo,
		repos.TransactionRepo,
	)
	container.Reporting = NewReportService(
		repos.FundingAccountRepo,
		repos.CategoryRepo,
		repos.TransactionRepo,
	)
	container.Router = NewRouterService(
		container.Link,
		container.Classifier,
		container.Recorder,
		container.Reporting,
		NewReplyComposer(),
	)

	return container
}
