package identifiers

// list of built-in supported systems (although extendable at runtime and by importing other packages)
const (
	SNOMEDCT    = "http://snomed.info/sct"
	GMCNumber   = "https://fhir.hl7.org.uk/Id/gmc-number"
	NMCPIN      = "https://fhir.hl7.org.uk/Id/nmc-pin"
	SDSUserID   = "https://fhir.nhs.uk/Id/sds-user-id"
	NHSNumber   = "https://fhir.nhs.uk/Id/nhs-number"
	ODSCode     = "https://fhir.nhs.uk/Id/ods-organization-code"
	ODSSiteCode = "https://fhir.nhs.uk/Id/ods-site-code"
)
