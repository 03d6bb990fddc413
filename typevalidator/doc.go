// Package typevalidator validates in-memory payloads using the content
// type sniffed by [sniffkit] together with size bounds. It never consults
// filenames, extensions, or transport metadata: the payload bytes are the
// only input.
//
// # Quick Start
//
// Using presets:
//
//	// Accept sniffable image types up to 10MB
//	validator := typevalidator.ForImages().MustBuild()
//	err := validator.Validate(data)
//
// Using the builder API:
//
//	validator, err := typevalidator.NewBuilder().
//	    MaxSize(5 * typevalidator.MB).
//	    Accept("image/*", "application/pdf").
//	    WithChecksum(sniffkit.ChecksumSHA256).
//	    Build()
//
//	err = validator.Validate(data)
//
// Accepted and blocked types may be exact ("image/png") or glob patterns
// ("image/*", "*/*"); parameters on the sniffed type are ignored during
// matching, so "text/plain" accepts "text/plain; charset=utf-8".
//
// # Detailed Reports
//
// Check runs every check and collects all failures instead of stopping at
// the first:
//
//	result := validator.Check(data)
//	if !result.Valid {
//	    for _, check := range result.FailedChecks() {
//	        log.Println(check.Name, check.Message)
//	    }
//	}
//	fmt.Println(result.Summary())
//
// # Error Handling
//
// Validation errors include the error type for programmatic handling:
//
//	err := validator.Validate(data)
//	if err != nil {
//	    switch {
//	    case typevalidator.IsErrorOfType(err, typevalidator.ErrorTypeSize):
//	        // Payload too large or too small
//	    case typevalidator.IsErrorOfType(err, typevalidator.ErrorTypeContent):
//	        // Sniffed type not accepted, or blocked
//	    }
//	}
//
// # Configuration
//
// Validators can be built from environment variables (SNIFFKIT_MAX_SIZE,
// SNIFFKIT_ACCEPTED_TYPES, SNIFFKIT_BLOCKED_TYPES, SNIFFKIT_CHECKSUM):
//
//	validator, err := typevalidator.FromConfig()
package typevalidator
