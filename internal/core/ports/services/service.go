package services

// ServiceContainer holds all service facades needed by handlers.
type ServiceContainer struct {
	Link       LinkSvcFacade
	Classifier IntentClassifierSvc
	Recorder   TransactionRecorderSvc
	Reporting  ReportingSvc
	Router     MessageRouterSvc
}
