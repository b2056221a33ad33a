package api

import "github.com/bnema/pharmacy-intel-cli/internal/domain"

type identityPayload struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (p identityPayload) toDomain() domain.Identity {
	return domain.Identity{ID: p.ID, Email: p.Email, Name: p.Name}
}

type pharmacyPayload struct {
	ID                  int     `json:"id"`
	NPI                 string  `json:"npi"`
	OrganizationName    string  `json:"organization_name"`
	DBAName             *string `json:"dba_name"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	Zip                 *string `json:"zip"`
	Phone               *string `json:"phone"`
	IsIndependent       bool    `json:"is_independent"`
	IsChain             bool    `json:"is_chain"`
	ChainParent         *string `json:"chain_parent"`
	MedicareClaimsCount *int    `json:"medicare_claims_count"`
}

func (p pharmacyPayload) toDomain() domain.Pharmacy {
	return domain.Pharmacy{
		ID:                  domain.PharmacyID(p.ID),
		NPI:                 p.NPI,
		OrganizationName:    p.OrganizationName,
		DBAName:             p.DBAName,
		City:                p.City,
		State:               p.State,
		Zip:                 p.Zip,
		Phone:               p.Phone,
		IsIndependent:       p.IsIndependent,
		IsChain:             p.IsChain,
		ChainParent:         p.ChainParent,
		MedicareClaimsCount: p.MedicareClaimsCount,
	}
}

type pharmacyDetailPayload struct {
	pharmacyPayload
	EntityType               *string  `json:"entity_type"`
	AddressLine1             *string  `json:"address_line1"`
	AddressLine2             *string  `json:"address_line2"`
	County                   *string  `json:"county"`
	Fax                      *string  `json:"fax"`
	TaxonomyCode             *string  `json:"taxonomy_code"`
	TaxonomyDescription      *string  `json:"taxonomy_description"`
	IsInstitutional          bool     `json:"is_institutional"`
	AuthorizedOfficialName   *string  `json:"authorized_official_name"`
	AuthorizedOfficialTitle  *string  `json:"authorized_official_title"`
	AuthorizedOfficialPhone  *string  `json:"authorized_official_phone"`
	OwnershipType            *string  `json:"ownership_type"`
	MedicareBeneficiaryCount *int     `json:"medicare_beneficiary_count"`
	MedicareTotalCost        *float64 `json:"medicare_total_cost"`
	Latitude                 *float64 `json:"latitude"`
	Longitude                *float64 `json:"longitude"`
	FirstSeen                *string  `json:"first_seen"`
	LastRefreshed            *string  `json:"last_refreshed"`
}

func (p pharmacyDetailPayload) toDomain() domain.PharmacyDetail {
	return domain.PharmacyDetail{
		Pharmacy:                 p.pharmacyPayload.toDomain(),
		EntityType:               p.EntityType,
		AddressLine1:             p.AddressLine1,
		AddressLine2:             p.AddressLine2,
		County:                   p.County,
		Fax:                      p.Fax,
		TaxonomyCode:             p.TaxonomyCode,
		TaxonomyDescription:      p.TaxonomyDescription,
		IsInstitutional:          p.IsInstitutional,
		AuthorizedOfficialName:   p.AuthorizedOfficialName,
		AuthorizedOfficialTitle:  p.AuthorizedOfficialTitle,
		AuthorizedOfficialPhone:  p.AuthorizedOfficialPhone,
		OwnershipType:            p.OwnershipType,
		MedicareBeneficiaryCount: p.MedicareBeneficiaryCount,
		MedicareTotalCost:        p.MedicareTotalCost,
		Latitude:                 p.Latitude,
		Longitude:                p.Longitude,
		FirstSeen:                p.FirstSeen,
		LastRefreshed:            p.LastRefreshed,
	}
}

type pipelineRunPayload struct {
	ID               int     `json:"id"`
	Status           string  `json:"status"`
	StartedAt        *string `json:"started_at"`
	CompletedAt      *string `json:"completed_at"`
	RecordsProcessed int     `json:"records_processed"`
}

func (p pipelineRunPayload) toDomain() domain.PipelineRun {
	return domain.PipelineRun{
		ID:               p.ID,
		Status:           p.Status,
		StartedAt:        p.StartedAt,
		CompletedAt:      p.CompletedAt,
		RecordsProcessed: p.RecordsProcessed,
	}
}

type pipelineStatusPayload struct {
	Status           string  `json:"status"`
	StartedAt        *string `json:"started_at"`
	CompletedAt      *string `json:"completed_at"`
	RecordsProcessed int     `json:"records_processed"`
	Message          string  `json:"message"`
}

func (p pipelineStatusPayload) toDomain() domain.PipelineStatus {
	return domain.PipelineStatus{
		Status:           p.Status,
		StartedAt:        p.StartedAt,
		CompletedAt:      p.CompletedAt,
		RecordsProcessed: p.RecordsProcessed,
		Message:          p.Message,
	}
}
