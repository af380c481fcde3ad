// Package validator provides a small declarative validation framework for
// request-style checks: each check is a Rule pairing a predicate with the
// error reported on failure, and Apply runs a rule set and collects every
// failure into ValidationErrors.
//
// Rules are configured once (field name, policy options) and evaluated each
// time Apply runs, which keeps the host code declarative:
//
//	err := validator.Apply(
//		validator.ValidPESEL("pesel", req.PESEL),
//		validator.PESELMinAge("pesel", req.PESEL, 18),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// render errs.Get("pesel") to the user
//	}
//
// Messages carry translation keys (e.g. "validation.pesel") so hosts can
// localize them; the plain Message is the fallback.
package validator
