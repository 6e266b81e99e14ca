package controllers

import (
	leads_repositories "dealership-backend/leads/repositories"
	leads_services "dealership-backend/leads/services"
	search_repositories "dealership-backend/search/repositories"
	"dealership-backend/utils"

	"gorm.io/gorm"
)

// LeadController handles the lead HTTP surface.
type LeadController struct {
	Lifecycle   *leads_services.LifecycleService
	LeadRepo    leads_repositories.LeadRepository
	EnquiryRepo leads_repositories.EnquiryRepository
	DB          *gorm.DB
	Mailer      *utils.Mailer
	SMS         *utils.GatewaySender
	SearchRepo  search_repositories.SearchRepository
}
