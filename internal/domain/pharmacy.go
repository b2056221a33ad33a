package domain

type PharmacyID int

// Pharmacy is the summary shape returned by the listing endpoint.
type Pharmacy struct {
	ID                  PharmacyID
	NPI                 string
	OrganizationName    string
	DBAName             *string
	City                *string
	State               *string
	Zip                 *string
	Phone               *string
	IsIndependent       bool
	IsChain             bool
	ChainParent         *string
	MedicareClaimsCount *int
}

// PharmacyDetail is the full record returned by the single-record endpoint.
// Attributes absent from the registry stay nil rather than zero-valued.
type PharmacyDetail struct {
	Pharmacy
	EntityType               *string
	AddressLine1             *string
	AddressLine2             *string
	County                   *string
	Fax                      *string
	TaxonomyCode             *string
	TaxonomyDescription      *string
	IsInstitutional          bool
	AuthorizedOfficialName   *string
	AuthorizedOfficialTitle  *string
	AuthorizedOfficialPhone  *string
	OwnershipType            *string
	MedicareBeneficiaryCount *int
	MedicareTotalCost        *float64
	Latitude                 *float64
	Longitude                *float64
	FirstSeen                *string
	LastRefreshed            *string
}
