package nhsnumber

import "github.com/wardle/nhsnumber/identifiers"

func init() {
	identifiers.RegisterValidator(identifiers.NHSNumber, Validate)
	identifiers.RegisterFormatter(identifiers.NHSNumber, Format)
}
