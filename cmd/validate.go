package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wardle/nhsnumber/identifiers"
	"github.com/wardle/nhsnumber/nhsnumber"
)

// errInvalid is returned when one or more values fail validation, giving a non-zero exit status
var errInvalid = errors.New("one or more values are invalid")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <value>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Validate one or more identifiers",
	Long: `Validate one or more identifiers, by default NHS numbers.

For example:

nhsnumber validate 9077844449 1234567890
nhsnumber validate --system https://fhir.nhs.uk/Id/nhs-number "907 784 4449"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		system := viper.GetString("system")
		if _, ok := identifiers.Lookup(system); !ok {
			return fmt.Errorf("unknown system: '%s'", system)
		}
		asJSON := viper.GetBool("json")
		out := cmd.OutOrStdout()
		valid := true
		for _, value := range args {
			id := identifiers.Identifier{System: system, Value: value}
			err := identifiers.Validate(id)
			if errors.Is(err, identifiers.ErrNoValidator) {
				return err
			}
			if err != nil {
				valid = false
			}
			if asJSON {
				if err := writeJSON(out, validationResult(id, err)); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "%s: invalid (%s): %s\n", value, errorKind(err), err)
			} else {
				fmt.Fprintf(out, "%s: valid\n", value)
			}
		}
		if !valid {
			return errInvalid
		}
		return nil
	},
}

func validationResult(id identifiers.Identifier, err error) map[string]interface{} {
	result := map[string]interface{}{
		"system": id.System,
		"value":  id.Value,
		"valid":  err == nil,
	}
	if err != nil {
		result["error"] = errorKind(err)
		result["message"] = err.Error()
	} else if formatted, err := identifiers.Format(id); err == nil {
		result["formatted"] = formatted
	}
	return result
}

func errorKind(err error) string {
	var verr *nhsnumber.ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	return "invalid"
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("system", identifiers.NHSNumber, "URI of the identifier system")
	viper.BindPFlag("system", validateCmd.Flags().Lookup("system"))
}
